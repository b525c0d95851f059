package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/shenikar/flood_risk_system/internal/service"
)

type AssessmentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewAssessmentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.AssessmentRepository {
	return &AssessmentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Upsert сохраняет оценку риска; повторный расчёт по тому же репорту
// перезаписывает строку атомарно, дубликаты не появляются
func (r *AssessmentRepository) Upsert(ctx context.Context, assessment *models.RiskAssessment) error {
	query := `
		INSERT INTO risk_scores (report_id, final_score, risk_level, recommendation, calculated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (report_id) DO UPDATE SET
			final_score = EXCLUDED.final_score,
			risk_level = EXCLUDED.risk_level,
			recommendation = EXCLUDED.recommendation,
			calculated_at = EXCLUDED.calculated_at
		RETURNING id, calculated_at;
	`
	err := r.db.QueryRow(ctx, query,
		assessment.ReportID,
		assessment.FinalScore,
		string(assessment.RiskLevel),
		assessment.Recommendation,
		assessment.CalculatedAt,
	).Scan(&assessment.ID, &assessment.CalculatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert risk assessment: %w", err)
	}
	return nil
}

// GetByReportID возвращает актуальную оценку по репорту
func (r *AssessmentRepository) GetByReportID(ctx context.Context, reportID uuid.UUID) (*models.RiskAssessment, error) {
	assessment := &models.RiskAssessment{}
	query := `
		SELECT id, report_id, final_score, risk_level, recommendation, calculated_at
		FROM risk_scores
		WHERE report_id = $1;
	`
	err := r.db.QueryRow(ctx, query, reportID).Scan(
		&assessment.ID,
		&assessment.ReportID,
		&assessment.FinalScore,
		&assessment.RiskLevel,
		&assessment.Recommendation,
		&assessment.CalculatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("assessment for report %s: %w", reportID, models.ErrAssessmentNotFound)
		}
		return nil, fmt.Errorf("failed to get assessment by report id: %w", err)
	}
	return assessment, nil
}

// RecentWithPlace возвращает оценки из окна свежести вместе с извлечённым
// местом репорта, самые свежие и не больше limit
func (r *AssessmentRepository) RecentWithPlace(ctx context.Context, from, to time.Time, limit int) ([]*models.AssessmentPlace, error) {
	query := `
		SELECT
			rs.id,
			rs.report_id,
			rs.final_score,
			rs.risk_level,
			rs.recommendation,
			rs.calculated_at,
			COALESCE(ar.extracted_state, ''),
			COALESCE(ar.extracted_city, '')
		FROM risk_scores rs
		JOIN analysis_results ar ON ar.report_id = rs.report_id
		WHERE rs.calculated_at >= $1 AND rs.calculated_at <= $2
		ORDER BY rs.calculated_at DESC
		LIMIT $3;
	`
	rows, err := r.db.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent assessments: %w", err)
	}
	defer rows.Close()

	places := make([]*models.AssessmentPlace, 0)
	for rows.Next() {
		p := &models.AssessmentPlace{}
		err := rows.Scan(
			&p.Assessment.ID,
			&p.Assessment.ReportID,
			&p.Assessment.FinalScore,
			&p.Assessment.RiskLevel,
			&p.Assessment.Recommendation,
			&p.Assessment.CalculatedAt,
			&p.ExtractedState,
			&p.ExtractedCity,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assessment row: %w", err)
		}
		places = append(places, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error recent assessments iteration: %w", err)
	}
	return places, nil
}

// ListAssessments возвращает список оценок с пагинацией
func (r *AssessmentRepository) ListAssessments(ctx context.Context, page, pageSize int) ([]*models.RiskAssessment, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT id, report_id, final_score, risk_level, recommendation, calculated_at
		FROM risk_scores
		ORDER BY calculated_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	defer rows.Close()

	assessments := make([]*models.RiskAssessment, 0)
	for rows.Next() {
		a := &models.RiskAssessment{}
		err := rows.Scan(
			&a.ID,
			&a.ReportID,
			&a.FinalScore,
			&a.RiskLevel,
			&a.Recommendation,
			&a.CalculatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assessment row: %w", err)
		}
		assessments = append(assessments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return assessments, nil
}

// CountCalculatedSince возвращает количество оценок за последние minutes минут
func (r *AssessmentRepository) CountCalculatedSince(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM risk_scores
		WHERE calculated_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	if err := r.db.QueryRow(ctx, query, minutes).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count recent assessments: %w", err)
	}
	return count, nil
}

func assessmentCacheKey(reportID uuid.UUID) string {
	return fmt.Sprintf("assessment:%s", reportID.String())
}

// GetAssessmentFromCache пытается получить оценку из Redis
func (r *AssessmentRepository) GetAssessmentFromCache(ctx context.Context, reportID uuid.UUID) (*models.RiskAssessment, error) {
	val, err := r.redisClient.Get(ctx, assessmentCacheKey(reportID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get assessment from cache: %w", err)
	}

	assessment := &models.RiskAssessment{}
	if err := json.Unmarshal(val, assessment); err != nil {
		return nil, fmt.Errorf("failed to unmarshal assessment from cache: %w", err)
	}
	return assessment, nil
}

// SetAssessmentCache сохраняет оценку в Redis
func (r *AssessmentRepository) SetAssessmentCache(ctx context.Context, assessment *models.RiskAssessment) error {
	val, err := json.Marshal(assessment)
	if err != nil {
		return fmt.Errorf("failed to marshal assessment for cache: %w", err)
	}
	// Срок жизни кэша 5 минут
	if err := r.redisClient.Set(ctx, assessmentCacheKey(assessment.ReportID), val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set assessment in cache: %w", err)
	}
	return nil
}

// InvalidateAssessmentCache удаляет оценку из Redis кэша
func (r *AssessmentRepository) InvalidateAssessmentCache(ctx context.Context, reportID uuid.UUID) error {
	if err := r.redisClient.Del(ctx, assessmentCacheKey(reportID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate assessment cache: %w", err)
	}
	return nil
}
