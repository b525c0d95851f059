package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/shenikar/flood_risk_system/internal/service"
)

type LocationRepository struct {
	db *pgxpool.Pool
}

func NewLocationRepository(db *pgxpool.Pool) service.LocationRepository {
	return &LocationRepository{
		db: db,
	}
}

// FindTownByName возвращает населённый пункт с координатами по точному
// совпадению нормализованного имени; (nil, nil) если совпадения нет
func (r *LocationRepository) FindTownByName(ctx context.Context, name string) (*models.Town, error) {
	town := &models.Town{}
	query := `
		SELECT
			id,
			name,
			latitude,
			longitude,
			COALESCE(state_id, ''),
			COALESCE(district_id, ''),
			created_at,
			updated_at
		FROM towns
		WHERE lower(name) = lower($1)
			AND latitude IS NOT NULL
			AND longitude IS NOT NULL
		LIMIT 1;
	`
	err := r.db.QueryRow(ctx, query, name).Scan(
		&town.ID,
		&town.Name,
		&town.Latitude,
		&town.Longitude,
		&town.StateID,
		&town.DistrictID,
		&town.CreatedAt,
		&town.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find town by name: %w", err)
	}
	return town, nil
}

// FindDistrictByName возвращает округ по имени; при непустом stateName
// совпадение дополнительно фильтруется по штату
func (r *LocationRepository) FindDistrictByName(ctx context.Context, name, stateName string) (*models.District, error) {
	district := &models.District{}

	var err error
	if stateName != "" {
		query := `
			SELECT d.id, d.name, d.state_id, d.created_at, d.updated_at
			FROM districts d
			JOIN states s ON s.id = d.state_id
			WHERE lower(d.name) = lower($1) AND lower(s.name) = lower($2)
			LIMIT 1;
		`
		err = r.db.QueryRow(ctx, query, name, stateName).Scan(
			&district.ID, &district.Name, &district.StateID, &district.CreatedAt, &district.UpdatedAt,
		)
	} else {
		query := `
			SELECT id, name, state_id, created_at, updated_at
			FROM districts
			WHERE lower(name) = lower($1)
			LIMIT 1;
		`
		err = r.db.QueryRow(ctx, query, name).Scan(
			&district.ID, &district.Name, &district.StateID, &district.CreatedAt, &district.UpdatedAt,
		)
	}

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find district by name: %w", err)
	}
	return district, nil
}

// DistrictCentroid возвращает среднее координат населённых пунктов округа;
// (nil, nil) если у округа нет городов с координатами
func (r *LocationRepository) DistrictCentroid(ctx context.Context, districtID string) (*models.Coordinate, error) {
	query := `
		SELECT AVG(latitude), AVG(longitude)
		FROM towns
		WHERE district_id = $1
			AND latitude IS NOT NULL
			AND longitude IS NOT NULL;
	`
	var lat, lng *float64
	if err := r.db.QueryRow(ctx, query, districtID).Scan(&lat, &lng); err != nil {
		return nil, fmt.Errorf("failed to compute district centroid: %w", err)
	}
	if lat == nil || lng == nil {
		return nil, nil
	}
	return &models.Coordinate{Latitude: *lat, Longitude: *lng}, nil
}

// FindStateByName возвращает штат по нормализованному имени
func (r *LocationRepository) FindStateByName(ctx context.Context, name string) (*models.State, error) {
	state := &models.State{}
	query := `
		SELECT id, name, created_at, updated_at
		FROM states
		WHERE lower(name) = lower($1)
		LIMIT 1;
	`
	err := r.db.QueryRow(ctx, query, name).Scan(&state.ID, &state.Name, &state.CreatedAt, &state.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find state by name: %w", err)
	}
	return state, nil
}

// StateCentroid возвращает среднее координат населённых пунктов штата
func (r *LocationRepository) StateCentroid(ctx context.Context, stateID string) (*models.Coordinate, error) {
	query := `
		SELECT AVG(latitude), AVG(longitude)
		FROM towns
		WHERE state_id = $1
			AND latitude IS NOT NULL
			AND longitude IS NOT NULL;
	`
	var lat, lng *float64
	if err := r.db.QueryRow(ctx, query, stateID).Scan(&lat, &lng); err != nil {
		return nil, fmt.Errorf("failed to compute state centroid: %w", err)
	}
	if lat == nil || lng == nil {
		return nil, nil
	}
	return &models.Coordinate{Latitude: *lat, Longitude: *lng}, nil
}
