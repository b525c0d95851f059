package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/shenikar/flood_risk_system/internal/service"
)

type WarningRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewWarningRepository(db *pgxpool.Pool, redisClient *redis.Client) service.WarningRepository {
	return &WarningRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// LatestObservation возвращает самое свежее наблюдение по округу за дату;
// (nil, nil) когда данных нет — вызывающий различает "нет данных" и уровень 0
func (r *WarningRepository) LatestObservation(ctx context.Context, districtID string, date time.Time) (*models.WarningObservation, error) {
	obs := &models.WarningObservation{}
	query := `
		SELECT
			id,
			district_id,
			warning_level,
			rainfall_mm,
			temperature_c,
			observed_on,
			created_at
		FROM weather_data
		WHERE district_id = $1 AND observed_on = $2::date
		ORDER BY created_at DESC
		LIMIT 1;
	`
	err := r.db.QueryRow(ctx, query, districtID, date).Scan(
		&obs.ID,
		&obs.DistrictID,
		&obs.WarningLevel,
		&obs.RainfallMM,
		&obs.TemperatureC,
		&obs.ObservedOn,
		&obs.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest warning observation: %w", err)
	}
	return obs, nil
}

// SaveObservation сохраняет наблюдение в бд
func (r *WarningRepository) SaveObservation(ctx context.Context, obs *models.WarningObservation) error {
	query := `
		INSERT INTO weather_data (district_id, warning_level, rainfall_mm, temperature_c, observed_on)
		VALUES ($1, $2, $3, $4, $5::date) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		obs.DistrictID,
		obs.WarningLevel,
		obs.RainfallMM,
		obs.TemperatureC,
		obs.ObservedOn,
	).Scan(&obs.ID, &obs.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save warning observation: %w", err)
	}
	return nil
}

func severityCacheKey(districtID string, date time.Time) string {
	return fmt.Sprintf("warning:%s:%s", districtID, date.Format("2006-01-02"))
}

// GetSeverityFromCache пытается получить уровень предупреждения из Redis
func (r *WarningRepository) GetSeverityFromCache(ctx context.Context, districtID string, date time.Time) (int, bool, error) {
	val, err := r.redisClient.Get(ctx, severityCacheKey(districtID, date)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get severity from cache: %w", err)
	}

	level, err := strconv.Atoi(val)
	if err != nil {
		return 0, false, fmt.Errorf("failed to parse cached severity: %w", err)
	}
	return level, true, nil
}

// SetSeverityCache сохраняет уровень предупреждения в Redis
func (r *WarningRepository) SetSeverityCache(ctx context.Context, districtID string, date time.Time, level int) error {
	// Предупреждения за день обновляются нечасто, 10 минут достаточно
	if err := r.redisClient.Set(ctx, severityCacheKey(districtID, date), strconv.Itoa(level), 10*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set severity in cache: %w", err)
	}
	return nil
}
