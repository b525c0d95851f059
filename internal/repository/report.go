package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/shenikar/flood_risk_system/internal/service"
)

type ReportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) service.ReportRepository {
	return &ReportRepository{
		db: db,
	}
}

// CreateReport создает новую запись о репорте в бд
func (r *ReportRepository) CreateReport(ctx context.Context, report *models.FloodReport) error {
	query := `
		INSERT INTO reports (text, reported_at, location_hint)
		VALUES ($1, $2, $3) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		report.Text,
		report.ReportedAt,
		report.LocationHint,
	).Scan(&report.ID, &report.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// CreateAnalysis создает запись NLP-анализа для репорта
func (r *ReportRepository) CreateAnalysis(ctx context.Context, analysis *models.AnalysisResult) error {
	query := `
		INSERT INTO analysis_results (report_id, flood_detected, urgency_score, extracted_state, extracted_city)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, processed_at;
	`
	err := r.db.QueryRow(ctx, query,
		analysis.ReportID,
		analysis.FloodDetected,
		analysis.UrgencyScore,
		analysis.ExtractedState,
		analysis.ExtractedCity,
	).Scan(&analysis.ID, &analysis.ProcessedAt)
	if err != nil {
		return fmt.Errorf("failed to create analysis result: %w", err)
	}
	return nil
}

// GetAnalysisByReportID возвращает свежайший результат анализа для репорта
func (r *ReportRepository) GetAnalysisByReportID(ctx context.Context, reportID uuid.UUID) (*models.AnalysisResult, error) {
	analysis := &models.AnalysisResult{}
	query := `
		SELECT
			id,
			report_id,
			flood_detected,
			urgency_score,
			COALESCE(extracted_state, ''),
			COALESCE(extracted_city, ''),
			processed_at
		FROM analysis_results
		WHERE report_id = $1
		ORDER BY processed_at DESC
		LIMIT 1;
	`
	err := r.db.QueryRow(ctx, query, reportID).Scan(
		&analysis.ID,
		&analysis.ReportID,
		&analysis.FloodDetected,
		&analysis.UrgencyScore,
		&analysis.ExtractedState,
		&analysis.ExtractedCity,
		&analysis.ProcessedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("analysis for report %s not found", reportID)
		}
		return nil, fmt.Errorf("failed to get analysis by report id: %w", err)
	}
	return analysis, nil
}
