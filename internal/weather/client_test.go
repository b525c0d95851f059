package weather

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shenikar/flood_risk_system/internal/config"
	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		MetAPIURL:  server.URL,
		MetAPIKey:  "test-token",
		MetTimeout: 2 * time.Second,
	}
	return NewClient(cfg, logger)
}

func TestFetchWarningLevel_MaxSeverity(t *testing.T) {
	date := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// Проверяем параметры запроса MET API
		assert.Equal(t, "METToken test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "WARNING", r.URL.Query().Get("datasetid"))
		assert.Equal(t, "district-1", r.URL.Query().Get("locationid"))
		assert.Equal(t, "2025-07-15", r.URL.Query().Get("start_date"))

		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"severity": "yellow"},
				{"severity": "orange"},
				{"severity": "amber"},
			},
		})
	})

	level, err := client.FetchWarningLevel(context.Background(), "district-1", date)
	require.NoError(t, err)
	assert.Equal(t, 3, level)
}

func TestFetchWarningLevel_FallbackCategory(t *testing.T) {
	// Первая категория пуста, уровень берётся из второй
	date := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	var categories []string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get("datacategoryid")
		categories = append(categories, category)
		if category == "RAINS" {
			json.NewEncoder(w).Encode(map[string]any{"results": []map[string]any{}})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"level": "red"}},
		})
	})

	level, err := client.FetchWarningLevel(context.Background(), "district-1", date)
	require.NoError(t, err)
	assert.Equal(t, 4, level)
	assert.Equal(t, []string{"RAINS", "RAIN"}, categories)
}

func TestFetchWarningLevel_NoWarningsIsZero(t *testing.T) {
	// Успешный ответ без предупреждений — известный уровень 0, не ошибка
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"results": []map[string]any{}})
	})

	level, err := client.FetchWarningLevel(context.Background(), "district-1", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, level)
}

func TestFetchWarningLevel_ProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.FetchWarningLevel(context.Background(), "district-1", time.Now())
	assert.ErrorIs(t, err, models.ErrProviderUnavailable)
}

func TestSeverityToLevel(t *testing.T) {
	cases := []struct {
		in   any
		want int
	}{
		{nil, 0},
		{"red", 4},
		{"EMERGENCY", 4},
		{"orange", 3},
		{"warning", 3},
		{"amber", 2},
		{"watch", 2},
		{"yellow", 1},
		{"advisory", 1},
		{"unknown-color", 0},
		{"3", 3},
		{float64(2), 2},
		{float64(9), 4}, // зажимается сверху
		{float64(-1), 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, severityToLevel(tc.in), "input=%v", tc.in)
	}
}

func TestMaxSeverityLevel_FieldFallback(t *testing.T) {
	// Уровень берётся из первого непустого поля: severity, level, severity_level
	results := []warningResult{
		{SeverityLevel: "yellow"},
		{Level: float64(2)},
		{Severity: "orange"},
	}
	assert.Equal(t, 3, maxSeverityLevel(results))
	assert.Equal(t, 0, maxSeverityLevel(nil))
}
