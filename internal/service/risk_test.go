package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/flood_risk_system/internal/config"
	ingest_mocks "github.com/shenikar/flood_risk_system/internal/ingest/mocks"
	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/shenikar/flood_risk_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestRiskService — вспомогательная функция для создания сервиса с моками
func newTestRiskService(t *testing.T) (*riskService, *mocks.MockReportRepository, *mocks.MockAssessmentRepository, *mocks.MockLocationResolver, *mocks.MockWarningAggregator, *ingest_mocks.MockPublisher, clockwork.Clock) {
	ctrl := gomock.NewController(t)
	reportsMock := mocks.NewMockReportRepository(ctrl)
	assessmentsMock := mocks.NewMockAssessmentRepository(ctrl)
	resolverMock := mocks.NewMockLocationResolver(ctrl)
	warningsMock := mocks.NewMockWarningAggregator(ctrl)
	publisherMock := ingest_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		UrgencyWeight:          0.6,
		WarningWeight:          0.4,
		StatsTimeWindowMinutes: 60,
	}

	clock := clockwork.NewFakeClockAt(time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC))

	service := NewRiskScorer(reportsMock, assessmentsMock, resolverMock, warningsMock, publisherMock, logger, cfg, clock)
	return service.(*riskService), reportsMock, assessmentsMock, resolverMock, warningsMock, publisherMock, clock
}

func TestComputeScore_Deterministic(t *testing.T) {
	service, _, _, _, _, _, _ := newTestRiskService(t)

	// Одинаковый вход — одинаковый выход
	score1, level1, err := service.computeScore(8, 3, true)
	require.NoError(t, err)
	score2, level2, err := service.computeScore(8, 3, true)
	require.NoError(t, err)

	assert.Equal(t, score1, score2)
	assert.Equal(t, level1, level2)

	// 8*0.6 + (3/4*10)*0.4 = 4.8 + 3.0 = 7.8 -> High
	assert.Equal(t, 7.8, score1)
	assert.Equal(t, models.RiskHigh, level1)
}

func TestComputeScore_LowBound(t *testing.T) {
	service, _, _, _, _, _, _ := newTestRiskService(t)

	// 2*0.6 + 0 = 1.2 -> Low
	score, level, err := service.computeScore(2, 0, true)
	require.NoError(t, err)
	assert.Equal(t, 1.2, score)
	assert.Equal(t, models.RiskLow, level)

	// 1*0.6 = 0.6 зажимается снизу до 1.0
	score, level, err = service.computeScore(1, 0, true)
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)
	assert.Equal(t, models.RiskLow, level)
}

func TestComputeScore_Thresholds(t *testing.T) {
	service, _, _, _, _, _, _ := newTestRiskService(t)

	cases := []struct {
		urgency int
		warning int
		score   float64
		level   models.RiskLevel
	}{
		{5, 0, 3.0, models.RiskLow},       // ровно на границе Low
		{10, 0, 6.0, models.RiskModerate}, // ровно на границе Moderate
		{10, 2, 8.0, models.RiskHigh},     // ровно на границе High
		{10, 3, 9.0, models.RiskCritical},
		{10, 4, 10.0, models.RiskCritical},
	}

	for _, tc := range cases {
		score, level, err := service.computeScore(tc.urgency, tc.warning, true)
		require.NoError(t, err)
		assert.Equal(t, tc.score, score, "urgency=%d warning=%d", tc.urgency, tc.warning)
		assert.Equal(t, tc.level, level, "urgency=%d warning=%d", tc.urgency, tc.warning)
	}
}

func TestComputeScore_UnknownWarningSameAsZero(t *testing.T) {
	service, _, _, _, _, _, _ := newTestRiskService(t)

	knownScore, knownLevel, err := service.computeScore(7, 0, true)
	require.NoError(t, err)
	unknownScore, unknownLevel, err := service.computeScore(7, 0, false)
	require.NoError(t, err)

	// Численно Unknown совпадает с уровнем 0, различие только в рекомендации
	assert.Equal(t, knownScore, unknownScore)
	assert.Equal(t, knownLevel, unknownLevel)
}

func TestComputeScore_InvalidInput(t *testing.T) {
	service, _, _, _, _, _, _ := newTestRiskService(t)

	_, _, err := service.computeScore(0, 2, true)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, _, err = service.computeScore(11, 2, true)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, _, err = service.computeScore(5, 5, true)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestRecommendationFor_LowConfidenceSuffix(t *testing.T) {
	rec := recommendationFor(models.RiskHigh, true)
	assert.NotContains(t, rec, "confidence is reduced")

	recUnknown := recommendationFor(models.RiskHigh, false)
	assert.Contains(t, recUnknown, "confidence is reduced")
}

func TestIngestReport_Success(t *testing.T) {
	// Подготовка
	service, reportsMock, _, _, _, publisherMock, _ := newTestRiskService(t)
	ctx := context.Background()
	reportID := uuid.New()
	report := &models.FloodReport{Text: "Вода поднимается на главной улице"}
	analysis := &models.AnalysisResult{FloodDetected: true, UrgencyScore: 8}

	// Ожидания
	reportsMock.EXPECT().
		CreateReport(ctx, report).
		DoAndReturn(func(_ context.Context, r *models.FloodReport) error {
			r.ID = reportID
			return nil
		}).Times(1)
	reportsMock.EXPECT().
		CreateAnalysis(ctx, analysis).
		Return(nil).
		Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	// Действие
	err := service.IngestReport(ctx, report, analysis)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, reportID, analysis.ReportID)
}

func TestIngestReport_NoFlood_NotQueued(t *testing.T) {
	// Репорт без наводнения сохраняется, но скоринг не ставится в очередь
	service, reportsMock, _, _, _, _, _ := newTestRiskService(t)
	ctx := context.Background()
	report := &models.FloodReport{Text: "Сухо и солнечно"}
	analysis := &models.AnalysisResult{FloodDetected: false, UrgencyScore: 1}

	reportsMock.EXPECT().CreateReport(ctx, report).Return(nil).Times(1)
	reportsMock.EXPECT().CreateAnalysis(ctx, analysis).Return(nil).Times(1)

	err := service.IngestReport(ctx, report, analysis)
	require.NoError(t, err)
}

func TestIngestReport_InvalidUrgency(t *testing.T) {
	// Невалидная срочность отклоняется до любой записи
	service, _, _, _, _, _, _ := newTestRiskService(t)
	ctx := context.Background()
	report := &models.FloodReport{Text: "test"}
	analysis := &models.AnalysisResult{FloodDetected: true, UrgencyScore: 0}

	err := service.IngestReport(ctx, report, analysis)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestScoreReport_Success(t *testing.T) {
	// Подготовка
	service, reportsMock, assessmentsMock, resolverMock, warningsMock, _, clock := newTestRiskService(t)
	ctx := context.Background()
	reportID := uuid.New()

	analysis := &models.AnalysisResult{
		ReportID:       reportID,
		FloodDetected:  true,
		UrgencyScore:   8,
		ExtractedState: "Kerala",
		ExtractedCity:  "Palakkad",
	}
	resolved := &models.ResolvedLocation{
		Latitude:   10.78,
		Longitude:  76.65,
		DistrictID: "district-1",
		MatchedBy:  "town",
	}

	// Ожидания
	reportsMock.EXPECT().GetAnalysisByReportID(ctx, reportID).Return(analysis, nil).Times(1)
	resolverMock.EXPECT().Resolve(ctx, "Kerala", "Palakkad").Return(resolved, nil).Times(1)
	warningsMock.EXPECT().SeverityFor(ctx, "district-1", clock.Now()).Return(3, true, nil).Times(1)

	var saved *models.RiskAssessment
	assessmentsMock.EXPECT().
		Upsert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.RiskAssessment) error {
			a.ID = 42
			saved = a
			return nil
		}).Times(1)
	assessmentsMock.EXPECT().InvalidateAssessmentCache(ctx, reportID).Return(nil).Times(1)

	// Действие
	assessment, err := service.ScoreReport(ctx, reportID)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, assessment)
	assert.Equal(t, 7.8, assessment.FinalScore)
	assert.Equal(t, models.RiskHigh, assessment.RiskLevel)
	assert.NotContains(t, assessment.Recommendation, "confidence is reduced")
	assert.Equal(t, saved, assessment)
	assert.Equal(t, clock.Now(), assessment.CalculatedAt)
}

func TestScoreReport_NoFlood(t *testing.T) {
	// Репорт без наводнения не оценивается и не является ошибкой
	service, reportsMock, _, _, _, _, _ := newTestRiskService(t)
	ctx := context.Background()
	reportID := uuid.New()

	analysis := &models.AnalysisResult{ReportID: reportID, FloodDetected: false, UrgencyScore: 2}
	reportsMock.EXPECT().GetAnalysisByReportID(ctx, reportID).Return(analysis, nil).Times(1)

	assessment, err := service.ScoreReport(ctx, reportID)
	require.NoError(t, err)
	assert.Nil(t, assessment)
}

func TestScoreReport_UnresolvedLocation_LowConfidence(t *testing.T) {
	// Неразрешённое место не мешает скорингу: уровень Unknown, рекомендация
	// с пометкой о пониженной уверенности
	service, reportsMock, assessmentsMock, resolverMock, _, _, _ := newTestRiskService(t)
	ctx := context.Background()
	reportID := uuid.New()

	analysis := &models.AnalysisResult{
		ReportID:       reportID,
		FloodDetected:  true,
		UrgencyScore:   8,
		ExtractedState: "Atlantis",
		ExtractedCity:  "Nowhere",
	}

	reportsMock.EXPECT().GetAnalysisByReportID(ctx, reportID).Return(analysis, nil).Times(1)
	resolverMock.EXPECT().Resolve(ctx, "Atlantis", "Nowhere").Return(nil, nil).Times(1)
	assessmentsMock.EXPECT().Upsert(ctx, gomock.Any()).Return(nil).Times(1)
	assessmentsMock.EXPECT().InvalidateAssessmentCache(ctx, reportID).Return(nil).Times(1)

	assessment, err := service.ScoreReport(ctx, reportID)
	require.NoError(t, err)
	require.NotNil(t, assessment)

	// 8*0.6 + 0 = 4.8 -> Moderate
	assert.Equal(t, 4.8, assessment.FinalScore)
	assert.Equal(t, models.RiskModerate, assessment.RiskLevel)
	assert.Contains(t, assessment.Recommendation, "confidence is reduced")
}

func TestScoreReport_Idempotent(t *testing.T) {
	// Повторный скоринг с теми же входами даёт ту же оценку
	service, reportsMock, assessmentsMock, resolverMock, warningsMock, _, clock := newTestRiskService(t)
	ctx := context.Background()
	reportID := uuid.New()

	analysis := &models.AnalysisResult{
		ReportID:       reportID,
		FloodDetected:  true,
		UrgencyScore:   6,
		ExtractedState: "Kerala",
		ExtractedCity:  "Palakkad",
	}
	resolved := &models.ResolvedLocation{DistrictID: "district-1", MatchedBy: "town"}

	reportsMock.EXPECT().GetAnalysisByReportID(ctx, reportID).Return(analysis, nil).Times(2)
	resolverMock.EXPECT().Resolve(ctx, "Kerala", "Palakkad").Return(resolved, nil).Times(2)
	warningsMock.EXPECT().SeverityFor(ctx, "district-1", clock.Now()).Return(2, true, nil).Times(2)
	assessmentsMock.EXPECT().Upsert(ctx, gomock.Any()).Return(nil).Times(2)
	assessmentsMock.EXPECT().InvalidateAssessmentCache(ctx, reportID).Return(nil).Times(2)

	first, err := service.ScoreReport(ctx, reportID)
	require.NoError(t, err)
	second, err := service.ScoreReport(ctx, reportID)
	require.NoError(t, err)

	assert.Equal(t, first.FinalScore, second.FinalScore)
	assert.Equal(t, first.RiskLevel, second.RiskLevel)
	assert.Equal(t, first.Recommendation, second.Recommendation)
}

func TestGetAssessment_FromCache(t *testing.T) {
	service, _, assessmentsMock, _, _, _, _ := newTestRiskService(t)
	ctx := context.Background()
	reportID := uuid.New()
	expected := &models.RiskAssessment{ID: 1, ReportID: reportID, FinalScore: 7.8, RiskLevel: models.RiskHigh}

	assessmentsMock.EXPECT().GetAssessmentFromCache(ctx, reportID).Return(expected, nil).Times(1)

	assessment, err := service.GetAssessment(ctx, reportID)
	require.NoError(t, err)
	assert.Equal(t, expected, assessment)
}

func TestGetAssessment_FromDB(t *testing.T) {
	service, _, assessmentsMock, _, _, _, _ := newTestRiskService(t)
	ctx := context.Background()
	reportID := uuid.New()
	expected := &models.RiskAssessment{ID: 1, ReportID: reportID, FinalScore: 4.8, RiskLevel: models.RiskModerate}

	// Промах кеша, попадание в БД, запись в кеш
	assessmentsMock.EXPECT().GetAssessmentFromCache(ctx, reportID).Return(nil, nil).Times(1)
	assessmentsMock.EXPECT().GetByReportID(ctx, reportID).Return(expected, nil).Times(1)
	assessmentsMock.EXPECT().SetAssessmentCache(ctx, expected).Return(nil).Times(1)

	assessment, err := service.GetAssessment(ctx, reportID)
	require.NoError(t, err)
	assert.Equal(t, expected, assessment)
}

func TestGetAssessment_NotFoundPreserved(t *testing.T) {
	// Отсутствие оценки различимо через errors.Is после оборачивания
	service, _, assessmentsMock, _, _, _, _ := newTestRiskService(t)
	ctx := context.Background()
	reportID := uuid.New()

	assessmentsMock.EXPECT().GetAssessmentFromCache(ctx, reportID).Return(nil, nil).Times(1)
	assessmentsMock.EXPECT().
		GetByReportID(ctx, reportID).
		Return(nil, fmt.Errorf("assessment for report %s: %w", reportID, models.ErrAssessmentNotFound)).
		Times(1)

	assessment, err := service.GetAssessment(ctx, reportID)
	assert.Nil(t, assessment)
	assert.ErrorIs(t, err, models.ErrAssessmentNotFound)
}

func TestListAssessments_ClampsPagination(t *testing.T) {
	service, _, assessmentsMock, _, _, _, _ := newTestRiskService(t)
	ctx := context.Background()

	// Невалидная пагинация приводится к значениям по умолчанию
	assessmentsMock.EXPECT().ListAssessments(ctx, 1, 20).Return([]*models.RiskAssessment{}, nil).Times(1)

	_, err := service.ListAssessments(ctx, 0, 500)
	require.NoError(t, err)
}

func TestGetStats_Success(t *testing.T) {
	service, _, assessmentsMock, _, _, _, _ := newTestRiskService(t)
	ctx := context.Background()

	assessmentsMock.EXPECT().CountCalculatedSince(ctx, 60).Return(17, nil).Times(1)

	count, err := service.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 17, count)
}

func TestGetStats_RepositoryError(t *testing.T) {
	service, _, assessmentsMock, _, _, _, _ := newTestRiskService(t)
	ctx := context.Background()

	assessmentsMock.EXPECT().CountCalculatedSince(ctx, 60).Return(0, errors.New("db down")).Times(1)

	_, err := service.GetStats(ctx)
	assert.Error(t, err)
}
