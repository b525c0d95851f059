package routing

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
	"github.com/twpayne/go-polyline"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		RoutingAPIURL:  server.URL,
		RoutingAPIKey:  "test-key",
		RoutingTimeout: 2 * time.Second,
	}
	return NewClient(cfg, logger), server
}

func encodePoints(coords [][]float64) string {
	return string(polyline.EncodeCoords(coords))
}

func TestGetRoutes_Success(t *testing.T) {
	encoded := encodePoints([][]float64{{12.90, 77.50}, {12.90, 77.60}, {12.90, 77.70}})

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// Проверяем заголовки Google Routes API
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("X-Goog-Api-Key"))
		assert.Equal(t, routesFieldMask, r.Header.Get("X-Goog-FieldMask"))

		var req computeRoutesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "DRIVE", req.TravelMode)
		assert.True(t, req.ComputeAlternativeRoutes)

		resp := computeRoutesResponse{
			Routes: []routePayload{
				{
					Duration:       "1860s",
					DistanceMeters: 22000,
					Polyline: struct {
						EncodedPolyline string `json:"encodedPolyline"`
					}{EncodedPolyline: encoded},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	})

	routes, err := client.GetRoutes(context.Background(),
		models.Coordinate{Latitude: 12.90, Longitude: 77.50},
		models.Coordinate{Latitude: 12.90, Longitude: 77.70},
		models.TravelModeDrive,
	)

	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, encoded, routes[0].EncodedPolyline)
	assert.Equal(t, 22000, routes[0].DistanceM)
	assert.Equal(t, 1860, routes[0].DurationS)
	require.Len(t, routes[0].Points, 3)
	assert.InDelta(t, 12.90, routes[0].Points[0].Latitude, 0.0001)
	assert.InDelta(t, 77.60, routes[0].Points[1].Longitude, 0.0001)
}

func TestGetRoutes_MalformedPolylineDropped(t *testing.T) {
	// Кандидат с пустой полилинией отбрасывается, валидный остаётся
	good := encodePoints([][]float64{{12.90, 77.50}, {12.90, 77.70}})

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		resp := computeRoutesResponse{
			Routes: []routePayload{
				{Duration: "100s", DistanceMeters: 1000},
				{
					Duration:       "200s",
					DistanceMeters: 2000,
					Polyline: struct {
						EncodedPolyline string `json:"encodedPolyline"`
					}{EncodedPolyline: good},
				},
			},
		}
		json.NewEncoder(w).Encode(resp)
	})

	routes, err := client.GetRoutes(context.Background(), models.Coordinate{}, models.Coordinate{}, models.TravelModeDrive)
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, 2000, routes[0].DistanceM)
}

func TestGetRoutes_ProviderError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.GetRoutes(context.Background(), models.Coordinate{}, models.Coordinate{}, models.TravelModeDrive)
	assert.ErrorIs(t, err, models.ErrProviderUnavailable)
}

func TestGetRoutes_NetworkError(t *testing.T) {
	client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	_, err := client.GetRoutes(context.Background(), models.Coordinate{}, models.Coordinate{}, models.TravelModeDrive)
	assert.ErrorIs(t, err, models.ErrProviderUnavailable)
}

func TestParseDurationSeconds(t *testing.T) {
	assert.Equal(t, 1860, parseDurationSeconds("1860s"))
	assert.Equal(t, 0, parseDurationSeconds(""))
	assert.Equal(t, 0, parseDurationSeconds("abc"))
	assert.Equal(t, 42, parseDurationSeconds(" 42s "))
}

func TestDecodePolyline_RoundTrip(t *testing.T) {
	coords := [][]float64{{10.78, 76.65}, {10.80, 76.70}}
	points, err := decodePolyline(encodePoints(coords))
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.InDelta(t, 10.78, points[0].Latitude, 0.0001)
	assert.InDelta(t, 76.70, points[1].Longitude, 0.0001)

	_, err = decodePolyline("")
	assert.Error(t, err)
}
