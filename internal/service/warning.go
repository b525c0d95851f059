package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/sirupsen/logrus"
)

// WarningRepository определяет контракт для хранилища метеонаблюдений
type WarningRepository interface {
	LatestObservation(ctx context.Context, districtID string, date time.Time) (*models.WarningObservation, error)
	SaveObservation(ctx context.Context, obs *models.WarningObservation) error
	GetSeverityFromCache(ctx context.Context, districtID string, date time.Time) (int, bool, error)
	SetSeverityCache(ctx context.Context, districtID string, date time.Time, level int) error
}

// WarningProvider — внешний источник официальных предупреждений.
// Успешный ответ без предупреждений означает уровень 0, а не отсутствие данных
type WarningProvider interface {
	FetchWarningLevel(ctx context.Context, districtID string, date time.Time) (int, error)
}

// WarningAggregator определяет контракт получения уровня предупреждения по
// округу за дату. Второе возвращаемое значение false означает Unknown —
// данных нет; это не уровень 0 и не ошибка
type WarningAggregator interface {
	SeverityFor(ctx context.Context, districtID string, date time.Time) (int, bool, error)
}

type warningService struct {
	repo     WarningRepository
	provider WarningProvider // nil, если внешний источник не сконфигурирован
	logger   *logrus.Logger
}

func NewWarningAggregator(repo WarningRepository, provider WarningProvider, logger *logrus.Logger) WarningAggregator {
	return &warningService{
		repo:     repo,
		provider: provider,
		logger:   logger,
	}
}

// warningLevelName возвращает человекочитаемое имя уровня для логов
func warningLevelName(level int) string {
	switch level {
	case 1:
		return "Advisory"
	case 2:
		return "Watch"
	case 3:
		return "Warning"
	case 4:
		return "Emergency"
	}
	return "None"
}

// SeverityFor возвращает самое свежее наблюдение по округу за дату.
// Кэш — только оптимизация: попадание и промах дают одинаковый результат
// для фиксированной пары (округ, дата)
func (s *warningService) SeverityFor(ctx context.Context, districtID string, date time.Time) (int, bool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "warning",
		"method":   "SeverityFor",
		"district": districtID,
		"date":     date.Format("2006-01-02"),
	})

	level, ok, err := s.repo.GetSeverityFromCache(ctx, districtID, date)
	if err != nil {
		// Ошибка кэша не фатальна, идём в бд
		log.WithError(err).Warn("Failed to read severity cache")
	}
	if ok {
		return level, true, nil
	}

	obs, err := s.repo.LatestObservation(ctx, districtID, date)
	if err != nil {
		return 0, false, fmt.Errorf("service: could not load warning observation: %w", err)
	}

	if obs == nil {
		if s.provider == nil {
			log.Info("No warning observation and no provider configured, severity is unknown")
			return 0, false, nil
		}

		// Догружаем наблюдение у внешнего провайдера
		fetched, err := s.provider.FetchWarningLevel(ctx, districtID, date)
		if err != nil {
			return 0, false, fmt.Errorf("service: warning provider failed: %w", err)
		}

		obs = &models.WarningObservation{
			DistrictID:   districtID,
			WarningLevel: fetched,
			ObservedOn:   date,
		}
		if err := s.repo.SaveObservation(ctx, obs); err != nil {
			return 0, false, fmt.Errorf("service: could not save warning observation: %w", err)
		}
		log.WithField("level", warningLevelName(fetched)).Info("Warning observation fetched from provider")
	}

	if err := s.repo.SetSeverityCache(ctx, districtID, date, obs.WarningLevel); err != nil {
		log.WithError(err).Warn("Failed to write severity cache")
	}

	return obs.WarningLevel, true, nil
}
