package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/flood_risk_system/internal/config"
	"github.com/shenikar/flood_risk_system/internal/ingest"
	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ReportRepository определяет контракт для хранилища репортов и NLP-результатов
type ReportRepository interface {
	CreateReport(ctx context.Context, report *models.FloodReport) error
	CreateAnalysis(ctx context.Context, analysis *models.AnalysisResult) error
	GetAnalysisByReportID(ctx context.Context, reportID uuid.UUID) (*models.AnalysisResult, error)
}

// AssessmentRepository определяет контракт для хранилища оценок риска
type AssessmentRepository interface {
	Upsert(ctx context.Context, assessment *models.RiskAssessment) error
	GetByReportID(ctx context.Context, reportID uuid.UUID) (*models.RiskAssessment, error)
	RecentWithPlace(ctx context.Context, from, to time.Time, limit int) ([]*models.AssessmentPlace, error)
	ListAssessments(ctx context.Context, page, pageSize int) ([]*models.RiskAssessment, error)
	CountCalculatedSince(ctx context.Context, minutes int) (int, error)
	GetAssessmentFromCache(ctx context.Context, reportID uuid.UUID) (*models.RiskAssessment, error)
	SetAssessmentCache(ctx context.Context, assessment *models.RiskAssessment) error
	InvalidateAssessmentCache(ctx context.Context, reportID uuid.UUID) error
}

// RiskScorer определяет контракт скоринга риска по репортам
type RiskScorer interface {
	IngestReport(ctx context.Context, report *models.FloodReport, analysis *models.AnalysisResult) error
	ScoreReport(ctx context.Context, reportID uuid.UUID) (*models.RiskAssessment, error)
	GetAssessment(ctx context.Context, reportID uuid.UUID) (*models.RiskAssessment, error)
	ListAssessments(ctx context.Context, page, pageSize int) ([]*models.RiskAssessment, error)
	GetStats(ctx context.Context) (int, error)
}

type riskService struct {
	reports     ReportRepository
	assessments AssessmentRepository
	resolver    LocationResolver
	warnings    WarningAggregator
	publisher   ingest.Publisher
	logger      *logrus.Logger
	cfg         *config.Config
	clock       clockwork.Clock
}

func NewRiskScorer(
	reports ReportRepository,
	assessments AssessmentRepository,
	resolver LocationResolver,
	warnings WarningAggregator,
	publisher ingest.Publisher,
	logger *logrus.Logger,
	cfg *config.Config,
	clock clockwork.Clock,
) RiskScorer {
	return &riskService{
		reports:     reports,
		assessments: assessments,
		resolver:    resolver,
		warnings:    warnings,
		publisher:   publisher,
		logger:      logger,
		cfg:         cfg,
		clock:       clock,
	}
}

// IngestReport сохраняет репорт с результатом анализа и ставит его в очередь
// на скоринг. Репорт и анализ после создания не изменяются
func (s *riskService) IngestReport(ctx context.Context, report *models.FloodReport, analysis *models.AnalysisResult) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "risk",
		"method":  "IngestReport",
	})
	log.Info("Attempting to ingest analyzed report")

	if analysis.UrgencyScore < 1 || analysis.UrgencyScore > 10 {
		return fmt.Errorf("service: urgency score %d out of range [1,10]: %w", analysis.UrgencyScore, models.ErrInvalidInput)
	}

	if err := s.reports.CreateReport(ctx, report); err != nil {
		log.WithError(err).Error("Failed to create report in repository")
		return fmt.Errorf("service: could not create report: %w", err)
	}

	analysis.ReportID = report.ID
	if err := s.reports.CreateAnalysis(ctx, analysis); err != nil {
		log.WithError(err).Error("Failed to create analysis in repository")
		return fmt.Errorf("service: could not create analysis: %w", err)
	}

	if !analysis.FloodDetected {
		// Скорингу подлежат только репорты о наводнении
		log.WithField("report_id", report.ID).Info("Flood not detected, scoring skipped")
		return nil
	}

	job := ingest.ScoreJob{ReportID: report.ID, EnqueuedAt: s.clock.Now()}
	if err := s.publisher.Publish(ctx, job); err != nil {
		log.WithError(err).Error("Failed to enqueue score job")
		return fmt.Errorf("service: could not enqueue score job: %w", err)
	}

	log.WithField("report_id", report.ID).Info("Report ingested and queued for scoring")
	return nil
}

// computeScore — детерминированная чистая функция скоринга.
// Неизвестный уровень предупреждения подставляется нулём; сама оценка от
// флага уверенности не зависит
func (s *riskService) computeScore(urgency, warningLevel int, known bool) (float64, models.RiskLevel, error) {
	if urgency < 1 || urgency > 10 {
		return 0, "", fmt.Errorf("urgency score %d out of range [1,10]: %w", urgency, models.ErrInvalidInput)
	}
	if known && (warningLevel < 0 || warningLevel > 4) {
		return 0, "", fmt.Errorf("warning level %d out of range [0,4]: %w", warningLevel, models.ErrInvalidInput)
	}

	level := warningLevel
	if !known {
		level = 0
	}

	// Нормализация уровня 0..4 к шкале 0..10
	w10 := float64(level) / 4.0 * 10.0

	score := float64(urgency)*s.cfg.UrgencyWeight + w10*s.cfg.WarningWeight
	score = math.Max(1.0, math.Min(10.0, score))
	score = math.Round(score*10) / 10

	var riskLevel models.RiskLevel
	switch {
	case score <= 3.0:
		riskLevel = models.RiskLow
	case score <= 6.0:
		riskLevel = models.RiskModerate
	case score <= 8.0:
		riskLevel = models.RiskHigh
	default:
		riskLevel = models.RiskCritical
	}

	return score, riskLevel, nil
}

// recommendationFor возвращает текст рекомендации для уровня риска.
// Пониженная уверенность отражается только в тексте
func recommendationFor(level models.RiskLevel, warningKnown bool) string {
	var rec string
	switch level {
	case models.RiskCritical:
		rec = "Danger: Avoid travel in affected areas; move to higher ground and follow official instructions."
	case models.RiskHigh:
		rec = "High risk: Monitor official warnings, prepare evacuation plan, avoid low-lying areas."
	case models.RiskModerate:
		rec = "Moderate risk: Stay alert, check local advisories, avoid flood-prone roads."
	default:
		rec = "Low risk: No immediate action needed; stay informed of updates."
	}
	if !warningKnown {
		rec += " Official warning data was unavailable for this area; confidence is reduced."
	}
	return rec
}

// ScoreReport считает итоговую оценку риска по репорту и сохраняет её.
// Повторный расчёт с теми же входами идемпотентен: перезаписывается та же
// строка, меняется только calculated_at
func (s *riskService) ScoreReport(ctx context.Context, reportID uuid.UUID) (*models.RiskAssessment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "risk",
		"method":    "ScoreReport",
		"report_id": reportID,
	})
	log.Info("Scoring report")

	analysis, err := s.reports.GetAnalysisByReportID(ctx, reportID)
	if err != nil {
		log.WithError(err).Error("Failed to load analysis for report")
		return nil, fmt.Errorf("service: could not load analysis: %w", err)
	}

	if !analysis.FloodDetected {
		log.Info("Flood not detected, nothing to score")
		return nil, nil
	}

	loc, err := s.resolver.Resolve(ctx, analysis.ExtractedState, analysis.ExtractedCity)
	if err != nil {
		return nil, fmt.Errorf("service: could not resolve report location: %w", err)
	}

	// Без округа уровень предупреждения неизвестен; оценка всё равно
	// считается и сохраняется, индекс зон отбросит её позже
	warningLevel := 0
	warningKnown := false
	if loc != nil && loc.DistrictID != "" {
		warningLevel, warningKnown, err = s.warnings.SeverityFor(ctx, loc.DistrictID, s.clock.Now())
		if err != nil {
			return nil, fmt.Errorf("service: could not get warning severity: %w", err)
		}
	} else {
		log.Info("Report location has no district, warning severity unknown")
	}

	score, riskLevel, err := s.computeScore(analysis.UrgencyScore, warningLevel, warningKnown)
	if err != nil {
		log.WithError(err).Error("Score computation rejected input")
		return nil, fmt.Errorf("service: %w", err)
	}

	assessment := &models.RiskAssessment{
		ReportID:       reportID,
		FinalScore:     score,
		RiskLevel:      riskLevel,
		Recommendation: recommendationFor(riskLevel, warningKnown),
		CalculatedAt:   s.clock.Now(),
	}

	if err := s.assessments.Upsert(ctx, assessment); err != nil {
		log.WithError(err).Error("Failed to upsert risk assessment")
		return nil, fmt.Errorf("service: could not upsert assessment: %w", err)
	}

	if err := s.assessments.InvalidateAssessmentCache(ctx, reportID); err != nil {
		log.WithError(err).Warn("Failed to invalidate assessment cache")
	}

	log.WithFields(logrus.Fields{
		"final_score": score,
		"risk_level":  riskLevel,
	}).Info("Report scored successfully")
	return assessment, nil
}

// GetAssessment возвращает оценку по репорту, используя кэш
func (s *riskService) GetAssessment(ctx context.Context, reportID uuid.UUID) (*models.RiskAssessment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "risk",
		"method":    "GetAssessment",
		"report_id": reportID,
	})

	cached, err := s.assessments.GetAssessmentFromCache(ctx, reportID)
	if err != nil {
		log.WithError(err).Warn("Failed to read assessment cache")
	}
	if cached != nil {
		return cached, nil
	}

	assessment, err := s.assessments.GetByReportID(ctx, reportID)
	if err != nil {
		log.WithError(err).Error("Failed to get assessment from repository")
		return nil, fmt.Errorf("service: could not get assessment: %w", err)
	}

	if err := s.assessments.SetAssessmentCache(ctx, assessment); err != nil {
		log.WithError(err).Warn("Failed to write assessment cache")
	}
	return assessment, nil
}

// ListAssessments возвращает список оценок с пагинацией
func (s *riskService) ListAssessments(ctx context.Context, page, pageSize int) ([]*models.RiskAssessment, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "risk",
		"method":    "ListAssessments",
		"page":      page,
		"page_size": pageSize,
	})

	assessments, err := s.assessments.ListAssessments(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list assessments from repository")
		return nil, fmt.Errorf("service: could not list assessments: %w", err)
	}
	return assessments, nil
}

// GetStats возвращает количество оценок, рассчитанных за окно статистики
func (s *riskService) GetStats(ctx context.Context) (int, error) {
	count, err := s.assessments.CountCalculatedSince(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		return 0, fmt.Errorf("service: could not get stats: %w", err)
	}
	return count, nil
}
