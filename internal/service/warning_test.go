package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/shenikar/flood_risk_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestWarningService — вспомогательная функция для создания сервиса с моками
func newTestWarningService(t *testing.T, withProvider bool) (*warningService, *mocks.MockWarningRepository, *mocks.MockWarningProvider) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockWarningRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	var providerMock *mocks.MockWarningProvider
	var provider WarningProvider
	if withProvider {
		providerMock = mocks.NewMockWarningProvider(ctrl)
		provider = providerMock
	}

	service := NewWarningAggregator(repoMock, provider, logger)
	return service.(*warningService), repoMock, providerMock
}

func TestSeverityFor_FromCache(t *testing.T) {
	service, repoMock, _ := newTestWarningService(t, false)
	ctx := context.Background()
	date := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	repoMock.EXPECT().GetSeverityFromCache(ctx, "district-1", date).Return(3, true, nil).Times(1)

	level, known, err := service.SeverityFor(ctx, "district-1", date)
	require.NoError(t, err)
	assert.True(t, known)
	assert.Equal(t, 3, level)
}

func TestSeverityFor_FromDB(t *testing.T) {
	service, repoMock, _ := newTestWarningService(t, false)
	ctx := context.Background()
	date := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	obs := &models.WarningObservation{DistrictID: "district-1", WarningLevel: 2, ObservedOn: date}

	// Промах кеша, попадание в БД, запись в кеш
	repoMock.EXPECT().GetSeverityFromCache(ctx, "district-1", date).Return(0, false, nil).Times(1)
	repoMock.EXPECT().LatestObservation(ctx, "district-1", date).Return(obs, nil).Times(1)
	repoMock.EXPECT().SetSeverityCache(ctx, "district-1", date, 2).Return(nil).Times(1)

	level, known, err := service.SeverityFor(ctx, "district-1", date)
	require.NoError(t, err)
	assert.True(t, known)
	assert.Equal(t, 2, level)
}

func TestSeverityFor_NoData_NoProvider_Unknown(t *testing.T) {
	// Нет наблюдения и нет провайдера: Unknown, а не уровень 0
	service, repoMock, _ := newTestWarningService(t, false)
	ctx := context.Background()
	date := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	repoMock.EXPECT().GetSeverityFromCache(ctx, "district-1", date).Return(0, false, nil).Times(1)
	repoMock.EXPECT().LatestObservation(ctx, "district-1", date).Return(nil, nil).Times(1)

	level, known, err := service.SeverityFor(ctx, "district-1", date)
	require.NoError(t, err)
	assert.False(t, known)
	assert.Equal(t, 0, level)
}

func TestSeverityFor_BackfillFromProvider(t *testing.T) {
	// Нет наблюдения в БД: уровень догружается у провайдера и сохраняется
	service, repoMock, providerMock := newTestWarningService(t, true)
	ctx := context.Background()
	date := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	repoMock.EXPECT().GetSeverityFromCache(ctx, "district-1", date).Return(0, false, nil).Times(1)
	repoMock.EXPECT().LatestObservation(ctx, "district-1", date).Return(nil, nil).Times(1)
	providerMock.EXPECT().FetchWarningLevel(ctx, "district-1", date).Return(4, nil).Times(1)
	repoMock.EXPECT().
		SaveObservation(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, obs *models.WarningObservation) error {
			assert.Equal(t, "district-1", obs.DistrictID)
			assert.Equal(t, 4, obs.WarningLevel)
			return nil
		}).Times(1)
	repoMock.EXPECT().SetSeverityCache(ctx, "district-1", date, 4).Return(nil).Times(1)

	level, known, err := service.SeverityFor(ctx, "district-1", date)
	require.NoError(t, err)
	assert.True(t, known)
	assert.Equal(t, 4, level)
}

func TestSeverityFor_ProviderZeroIsKnown(t *testing.T) {
	// Успешный ответ провайдера без предупреждений — это известный уровень 0
	service, repoMock, providerMock := newTestWarningService(t, true)
	ctx := context.Background()
	date := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	repoMock.EXPECT().GetSeverityFromCache(ctx, "district-1", date).Return(0, false, nil).Times(1)
	repoMock.EXPECT().LatestObservation(ctx, "district-1", date).Return(nil, nil).Times(1)
	providerMock.EXPECT().FetchWarningLevel(ctx, "district-1", date).Return(0, nil).Times(1)
	repoMock.EXPECT().SaveObservation(ctx, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().SetSeverityCache(ctx, "district-1", date, 0).Return(nil).Times(1)

	level, known, err := service.SeverityFor(ctx, "district-1", date)
	require.NoError(t, err)
	assert.True(t, known)
	assert.Equal(t, 0, level)
}

func TestSeverityFor_ProviderError(t *testing.T) {
	service, repoMock, providerMock := newTestWarningService(t, true)
	ctx := context.Background()
	date := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	repoMock.EXPECT().GetSeverityFromCache(ctx, "district-1", date).Return(0, false, nil).Times(1)
	repoMock.EXPECT().LatestObservation(ctx, "district-1", date).Return(nil, nil).Times(1)
	providerMock.EXPECT().FetchWarningLevel(ctx, "district-1", date).Return(0, models.ErrProviderUnavailable).Times(1)

	_, _, err := service.SeverityFor(ctx, "district-1", date)
	assert.ErrorIs(t, err, models.ErrProviderUnavailable)
}

func TestSeverityFor_CacheErrorNotFatal(t *testing.T) {
	// Ошибка кеша не мешает походу в БД
	service, repoMock, _ := newTestWarningService(t, false)
	ctx := context.Background()
	date := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	obs := &models.WarningObservation{DistrictID: "district-1", WarningLevel: 1, ObservedOn: date}

	repoMock.EXPECT().GetSeverityFromCache(ctx, "district-1", date).Return(0, false, errors.New("redis down")).Times(1)
	repoMock.EXPECT().LatestObservation(ctx, "district-1", date).Return(obs, nil).Times(1)
	repoMock.EXPECT().SetSeverityCache(ctx, "district-1", date, 1).Return(nil).Times(1)

	level, known, err := service.SeverityFor(ctx, "district-1", date)
	require.NoError(t, err)
	assert.True(t, known)
	assert.Equal(t, 1, level)
}

func TestWarningLevelName(t *testing.T) {
	assert.Equal(t, "None", warningLevelName(0))
	assert.Equal(t, "Advisory", warningLevelName(1))
	assert.Equal(t, "Watch", warningLevelName(2))
	assert.Equal(t, "Warning", warningLevelName(3))
	assert.Equal(t, "Emergency", warningLevelName(4))
}
