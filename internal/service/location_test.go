package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/shenikar/flood_risk_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestLocationService — вспомогательная функция для создания сервиса с моками
func newTestLocationService(t *testing.T) (*locationService, *mocks.MockLocationRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockLocationRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewLocationResolver(repoMock, logger)
	return service.(*locationService), repoMock
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "palakkad town", normalizeName("  Palakkad   Town "))
	assert.Equal(t, "kerala", normalizeName("KERALA"))
	assert.Equal(t, "", normalizeName("   "))
}

func TestResolve_TownMatch(t *testing.T) {
	// Подготовка
	service, repoMock := newTestLocationService(t)
	ctx := context.Background()
	town := &models.Town{
		ID:         "town-1",
		Name:       "Palakkad",
		Latitude:   10.78,
		Longitude:  76.65,
		StateID:    "state-1",
		DistrictID: "district-1",
	}

	// Ожидания
	repoMock.EXPECT().FindTownByName(ctx, "palakkad").Return(town, nil).Times(1)

	// Действие
	loc, err := service.Resolve(ctx, "Kerala", "Palakkad")

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, "town", loc.MatchedBy)
	assert.Equal(t, 10.78, loc.Latitude)
	assert.Equal(t, "district-1", loc.DistrictID)
	assert.Equal(t, "state-1", loc.StateID)
}

func TestResolve_DistrictFallback(t *testing.T) {
	// Города нет в справочнике, но текст называет округ
	service, repoMock := newTestLocationService(t)
	ctx := context.Background()
	district := &models.District{ID: "district-1", Name: "Palakkad", StateID: "state-1"}
	centroid := &models.Coordinate{Latitude: 10.8, Longitude: 76.7}

	repoMock.EXPECT().FindTownByName(ctx, "palakkad").Return(nil, nil).Times(1)
	repoMock.EXPECT().FindDistrictByName(ctx, "palakkad", "kerala").Return(district, nil).Times(1)
	repoMock.EXPECT().DistrictCentroid(ctx, "district-1").Return(centroid, nil).Times(1)

	loc, err := service.Resolve(ctx, "Kerala", "Palakkad")
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, "district", loc.MatchedBy)
	assert.Equal(t, "district-1", loc.DistrictID)
	assert.Equal(t, 10.8, loc.Latitude)
}

func TestResolve_DistrictRetryWithoutState(t *testing.T) {
	// Фильтр по штату не дал округа — повторяем поиск без штата
	service, repoMock := newTestLocationService(t)
	ctx := context.Background()
	district := &models.District{ID: "district-2", Name: "Wayanad", StateID: "state-1"}
	centroid := &models.Coordinate{Latitude: 11.6, Longitude: 76.1}

	repoMock.EXPECT().FindTownByName(ctx, "wayanad").Return(nil, nil).Times(1)
	repoMock.EXPECT().FindDistrictByName(ctx, "wayanad", "keralam").Return(nil, nil).Times(1)
	repoMock.EXPECT().FindDistrictByName(ctx, "wayanad", "").Return(district, nil).Times(1)
	repoMock.EXPECT().DistrictCentroid(ctx, "district-2").Return(centroid, nil).Times(1)

	loc, err := service.Resolve(ctx, "Keralam", "Wayanad")
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, "district", loc.MatchedBy)
}

func TestResolve_StateCentroidFallback(t *testing.T) {
	// Ни города, ни округа — последний уровень детализации, центроид штата
	service, repoMock := newTestLocationService(t)
	ctx := context.Background()
	state := &models.State{ID: "state-1", Name: "Kerala"}
	centroid := &models.Coordinate{Latitude: 10.5, Longitude: 76.2}

	repoMock.EXPECT().FindTownByName(ctx, "unknown city").Return(nil, nil).Times(1)
	repoMock.EXPECT().FindDistrictByName(ctx, "unknown city", "kerala").Return(nil, nil).Times(1)
	repoMock.EXPECT().FindDistrictByName(ctx, "unknown city", "").Return(nil, nil).Times(1)
	repoMock.EXPECT().FindStateByName(ctx, "kerala").Return(state, nil).Times(1)
	repoMock.EXPECT().StateCentroid(ctx, "state-1").Return(centroid, nil).Times(1)

	loc, err := service.Resolve(ctx, "Kerala", "Unknown  City")
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, "state_centroid", loc.MatchedBy)
	assert.Equal(t, "state-1", loc.StateID)
	assert.Empty(t, loc.DistrictID)
}

func TestResolve_Unresolved(t *testing.T) {
	// Ничего не совпало: (nil, nil), это не ошибка
	service, repoMock := newTestLocationService(t)
	ctx := context.Background()

	repoMock.EXPECT().FindTownByName(ctx, "nowhere").Return(nil, nil).Times(1)
	repoMock.EXPECT().FindDistrictByName(ctx, "nowhere", "atlantis").Return(nil, nil).Times(1)
	repoMock.EXPECT().FindDistrictByName(ctx, "nowhere", "").Return(nil, nil).Times(1)
	repoMock.EXPECT().FindStateByName(ctx, "atlantis").Return(nil, nil).Times(1)

	loc, err := service.Resolve(ctx, "Atlantis", "Nowhere")
	require.NoError(t, err)
	assert.Nil(t, loc)
}

func TestResolve_EmptyInput(t *testing.T) {
	// Пустой вход не трогает справочник
	service, _ := newTestLocationService(t)

	loc, err := service.Resolve(context.Background(), "", "  ")
	require.NoError(t, err)
	assert.Nil(t, loc)
}

func TestResolve_RepositoryError(t *testing.T) {
	service, repoMock := newTestLocationService(t)
	ctx := context.Background()

	repoMock.EXPECT().FindTownByName(ctx, "palakkad").Return(nil, errors.New("db down")).Times(1)

	_, err := service.Resolve(ctx, "Kerala", "Palakkad")
	assert.Error(t, err)
}
