package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/flood_risk_system/internal/config"
	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/shenikar/flood_risk_system/pkg/geo"
	"github.com/sirupsen/logrus"
)

// RouteProvider — внешний провайдер маршрутов-кандидатов
type RouteProvider interface {
	GetRoutes(ctx context.Context, origin, destination models.Coordinate, mode models.TravelMode) ([]models.RouteCandidate, error)
}

// RouteService определяет контракт подбора безопасного маршрута.
// Оценка маршрута ничего не мутирует: чистый цикл чтение-расчёт-ответ
type RouteService interface {
	FindSafeRoutes(ctx context.Context, origin, destination, travelMode string) (*models.SafeRouteResult, error)
}

type routeService struct {
	provider RouteProvider
	hazards  HazardIndex
	resolver LocationResolver
	logger   *logrus.Logger
	cfg      *config.Config
	clock    clockwork.Clock
}

func NewRouteService(
	provider RouteProvider,
	hazards HazardIndex,
	resolver LocationResolver,
	logger *logrus.Logger,
	cfg *config.Config,
	clock clockwork.Clock,
) RouteService {
	return &routeService{
		provider: provider,
		hazards:  hazards,
		resolver: resolver,
		logger:   logger,
		cfg:      cfg,
		clock:    clock,
	}
}

// parseTravelMode нормализует режим передвижения; пустое значение — DRIVE
func parseTravelMode(text string) (models.TravelMode, error) {
	if strings.TrimSpace(text) == "" {
		return models.TravelModeDrive, nil
	}
	mode := models.TravelMode(strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(text)), "-", "_"))
	if !mode.Valid() {
		return "", fmt.Errorf("unsupported travel mode %q: %w", text, models.ErrInvalidInput)
	}
	return mode, nil
}

// resolveEndpoint принимает "lat,lng" либо название места из справочника
func (s *routeService) resolveEndpoint(ctx context.Context, text, role string) (models.Coordinate, error) {
	if strings.TrimSpace(text) == "" {
		return models.Coordinate{}, fmt.Errorf("missing %s: %w", role, models.ErrInvalidInput)
	}

	if lat, lng, ok := geo.ParseLatLng(text); ok {
		return models.Coordinate{Latitude: lat, Longitude: lng}, nil
	}

	loc, err := s.resolver.Resolve(ctx, "", text)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("service: could not resolve %s: %w", role, err)
	}
	if loc == nil {
		return models.Coordinate{}, fmt.Errorf("unknown %s %q: %w", role, text, models.ErrInvalidInput)
	}
	return models.Coordinate{Latitude: loc.Latitude, Longitude: loc.Longitude}, nil
}

// minDistanceToRouteMeters возвращает минимальное расстояние от точки до
// полилинии маршрута по отрезкам между соседними вершинами
func minDistanceToRouteMeters(center models.Coordinate, points []models.Coordinate) float64 {
	minDist := geo.HaversineMeters(center.Latitude, center.Longitude, points[0].Latitude, points[0].Longitude)
	for i := 0; i+1 < len(points); i++ {
		d := geo.PointToSegmentMeters(
			center.Latitude, center.Longitude,
			points[i].Latitude, points[i].Longitude,
			points[i+1].Latitude, points[i+1].Longitude,
		)
		if d < minDist {
			minDist = d
		}
	}
	return minDist
}

// rankRoutes считает экспозицию кандидатов и ранжирует их по возрастанию
// (число зон, суммарный вес зон, длина, исходный порядок провайдера).
// Кандидаты с менее чем двумя точками считаются некорректными и отбрасываются
func (s *routeService) rankRoutes(candidates []models.RouteCandidate, zones []models.HazardZone) []models.RankedRoute {
	ranked := make([]models.RankedRoute, 0, len(candidates))
	for i, c := range candidates {
		if len(c.Points) < 2 {
			s.logger.WithFields(logrus.Fields{
				"service": "route",
				"index":   i,
				"points":  len(c.Points),
			}).Warn("Malformed route candidate rejected")
			continue
		}

		count, weight := 0, 0
		for _, z := range zones {
			center := models.Coordinate{Latitude: z.Latitude, Longitude: z.Longitude}
			// Граница зоны включительно
			if minDistanceToRouteMeters(center, c.Points) <= float64(z.RadiusM) {
				count++
				weight += z.RiskLevel.Weight()
			}
		}

		ranked = append(ranked, models.RankedRoute{
			Route:         c,
			HazardCount:   count,
			HazardWeight:  weight,
			ProviderOrder: i,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.HazardCount != b.HazardCount {
			return a.HazardCount < b.HazardCount
		}
		if a.HazardWeight != b.HazardWeight {
			return a.HazardWeight < b.HazardWeight
		}
		if a.Route.DistanceM != b.Route.DistanceM {
			return a.Route.DistanceM < b.Route.DistanceM
		}
		// Детерминированный тай-брейк по исходному порядку провайдера
		return a.ProviderOrder < b.ProviderOrder
	})

	return ranked
}

// FindSafeRoutes запрашивает кандидатов у провайдера, оценивает их против
// актуальных опасных зон и возвращает лучший маршрут с альтернативами.
// Зоны возвращаются всегда, даже если ни одна не пересекает маршруты
func (s *routeService) FindSafeRoutes(ctx context.Context, origin, destination, travelMode string) (*models.SafeRouteResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "route",
		"method":      "FindSafeRoutes",
		"origin":      origin,
		"destination": destination,
	})
	log.Info("Evaluating safe routes")

	mode, err := parseTravelMode(travelMode)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	originCoord, err := s.resolveEndpoint(ctx, origin, "origin")
	if err != nil {
		return nil, err
	}
	destCoord, err := s.resolveEndpoint(ctx, destination, "destination")
	if err != nil {
		return nil, err
	}

	zones, err := s.hazards.CurrentHazards(ctx, s.clock.Now(), s.cfg.HazardFreshness)
	if err != nil {
		return nil, fmt.Errorf("service: could not build hazard snapshot: %w", err)
	}

	candidates, err := s.provider.GetRoutes(ctx, originCoord, destCoord, mode)
	if err != nil {
		log.WithError(err).Error("Routing provider request failed")
		return nil, fmt.Errorf("service: routing provider: %w", err)
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("service: provider returned no candidates: %w", models.ErrNoRoutesAvailable)
	}

	ranked := s.rankRoutes(candidates, zones)
	if len(ranked) == 0 {
		return nil, fmt.Errorf("service: all candidates malformed: %w", models.ErrNoRoutesAvailable)
	}

	maxAlt := s.cfg.MaxAlternatives
	alternatives := ranked[1:]
	if len(alternatives) > maxAlt {
		alternatives = alternatives[:maxAlt]
	}

	log.WithFields(logrus.Fields{
		"candidates":   len(candidates),
		"zones":        len(zones),
		"best_hazards": ranked[0].HazardCount,
	}).Info("Safe route selected")

	return &models.SafeRouteResult{
		Best:         ranked[0],
		Alternatives: alternatives,
		Hazards:      zones,
	}, nil
}
