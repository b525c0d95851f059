package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/flood_risk_system/internal/config"
	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/sirupsen/logrus"
)

// HazardIndex определяет контракт построения снапшота опасных зон.
// Чистая проекция на чтение: ничего не пишет, порядок зон не специфицирован
type HazardIndex interface {
	CurrentHazards(ctx context.Context, asOf time.Time, freshnessWindow time.Duration) ([]models.HazardZone, error)
}

type hazardService struct {
	assessments AssessmentRepository
	resolver    LocationResolver
	logger      *logrus.Logger
	cfg         *config.Config
}

func NewHazardIndex(assessments AssessmentRepository, resolver LocationResolver, logger *logrus.Logger, cfg *config.Config) HazardIndex {
	return &hazardService{
		assessments: assessments,
		resolver:    resolver,
		logger:      logger,
		cfg:         cfg,
	}
}

// radiusFor возвращает радиус зоны для уровня риска из конфигурации
func (s *hazardService) radiusFor(level models.RiskLevel) int {
	switch level {
	case models.RiskCritical:
		return s.cfg.RadiusCriticalM
	case models.RiskHigh:
		return s.cfg.RadiusHighM
	case models.RiskModerate:
		return s.cfg.RadiusModerateM
	}
	return s.cfg.RadiusLowM
}

// CurrentHazards материализует свежие оценки в геолоцированные зоны.
// Оценки с неразрешимым местом отбрасываются с логированием и никогда не
// превращаются в зону с нулевыми координатами
func (s *hazardService) CurrentHazards(ctx context.Context, asOf time.Time, freshnessWindow time.Duration) ([]models.HazardZone, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "hazard",
		"method":  "CurrentHazards",
		"as_of":   asOf,
		"window":  freshnessWindow.String(),
	})

	from := asOf.Add(-freshnessWindow)
	places, err := s.assessments.RecentWithPlace(ctx, from, asOf, s.cfg.MaxHazardZones)
	if err != nil {
		log.WithError(err).Error("Failed to load recent assessments")
		return nil, fmt.Errorf("service: could not load recent assessments: %w", err)
	}

	zones := make([]models.HazardZone, 0, len(places))
	for _, p := range places {
		loc, err := s.resolver.Resolve(ctx, p.ExtractedState, p.ExtractedCity)
		if err != nil {
			// Одна проблемная оценка не роняет весь снапшот
			log.WithError(err).WithField("report_id", p.Assessment.ReportID).Warn("Failed to resolve assessment location, zone skipped")
			continue
		}
		if loc == nil {
			log.WithFields(logrus.Fields{
				"report_id": p.Assessment.ReportID,
				"state":     p.ExtractedState,
				"city":      p.ExtractedCity,
			}).Info("Assessment location unresolved, excluded from hazard index")
			continue
		}

		zones = append(zones, models.HazardZone{
			ID:        p.Assessment.ID,
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
			RiskLevel: p.Assessment.RiskLevel,
			RadiusM:   s.radiusFor(p.Assessment.RiskLevel),
		})
	}

	log.WithField("zones", len(zones)).Debug("Hazard snapshot built")
	return zones, nil
}
