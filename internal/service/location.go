package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/sirupsen/logrus"
)

// LocationRepository определяет контракт для справочника административных единиц
type LocationRepository interface {
	FindTownByName(ctx context.Context, name string) (*models.Town, error)
	FindDistrictByName(ctx context.Context, name, stateName string) (*models.District, error)
	DistrictCentroid(ctx context.Context, districtID string) (*models.Coordinate, error)
	FindStateByName(ctx context.Context, name string) (*models.State, error)
	StateCentroid(ctx context.Context, stateID string) (*models.Coordinate, error)
}

// LocationResolver определяет контракт разрешения текстового упоминания места
// в каноническую запись с координатами. Возвращает (nil, nil), если место не
// удалось разрешить: это не ошибка, вызывающий обязан исключить такой репорт
// из индекса опасных зон
type LocationResolver interface {
	Resolve(ctx context.Context, stateText, cityText string) (*models.ResolvedLocation, error)
}

type locationService struct {
	repo   LocationRepository
	logger *logrus.Logger
}

func NewLocationResolver(repo LocationRepository, logger *logrus.Logger) LocationResolver {
	return &locationService{
		repo:   repo,
		logger: logger,
	}
}

// normalizeName приводит имя к нижнему регистру и схлопывает пробелы
func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// Resolve пытается сопоставить город, затем округ, затем центроид штата.
// Пустой вход не является ошибкой — возвращается неразрешённый результат
func (s *locationService) Resolve(ctx context.Context, stateText, cityText string) (*models.ResolvedLocation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "Resolve",
		"state":   stateText,
		"city":    cityText,
	})

	state := normalizeName(stateText)
	city := normalizeName(cityText)

	if state == "" && city == "" {
		log.Debug("Empty location input, nothing to resolve")
		return nil, nil
	}

	// 1. Точное совпадение по населённому пункту
	if city != "" {
		town, err := s.repo.FindTownByName(ctx, city)
		if err != nil {
			return nil, fmt.Errorf("service: could not look up town: %w", err)
		}
		if town != nil {
			return &models.ResolvedLocation{
				Latitude:   town.Latitude,
				Longitude:  town.Longitude,
				TownID:     town.ID,
				DistrictID: town.DistrictID,
				StateID:    town.StateID,
				MatchedBy:  "town",
			}, nil
		}

		// 2. Текст города может называть округ
		district, err := s.repo.FindDistrictByName(ctx, city, state)
		if err != nil {
			return nil, fmt.Errorf("service: could not look up district: %w", err)
		}
		if district == nil && state != "" {
			// Повторяем без фильтра по штату
			district, err = s.repo.FindDistrictByName(ctx, city, "")
			if err != nil {
				return nil, fmt.Errorf("service: could not look up district: %w", err)
			}
		}
		if district != nil {
			centroid, err := s.repo.DistrictCentroid(ctx, district.ID)
			if err != nil {
				return nil, fmt.Errorf("service: could not compute district centroid: %w", err)
			}
			if centroid != nil {
				return &models.ResolvedLocation{
					Latitude:   centroid.Latitude,
					Longitude:  centroid.Longitude,
					DistrictID: district.ID,
					StateID:    district.StateID,
					MatchedBy:  "district",
				}, nil
			}
		}
	}

	// 3. Центроид штата как последний уровень детализации
	if state != "" {
		st, err := s.repo.FindStateByName(ctx, state)
		if err != nil {
			return nil, fmt.Errorf("service: could not look up state: %w", err)
		}
		if st != nil {
			centroid, err := s.repo.StateCentroid(ctx, st.ID)
			if err != nil {
				return nil, fmt.Errorf("service: could not compute state centroid: %w", err)
			}
			if centroid != nil {
				return &models.ResolvedLocation{
					Latitude:  centroid.Latitude,
					Longitude: centroid.Longitude,
					StateID:   st.ID,
					MatchedBy: "state_centroid",
				}, nil
			}
		}
	}

	log.Info("Location could not be resolved")
	return nil, nil
}
