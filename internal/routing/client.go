package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/shenikar/flood_risk_system/internal/config"
	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-polyline"
)

const routesFieldMask = "routes.duration,routes.distanceMeters,routes.polyline.encodedPolyline"

// Client - клиент провайдера маршрутов (Google Routes API v2).
// Все вызовы ограничены таймаутом из конфигурации
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *logrus.Logger
}

// NewClient создает новый клиент провайдера маршрутов
func NewClient(cfg *config.Config, logger *logrus.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.RoutingTimeout,
		},
		baseURL: cfg.RoutingAPIURL,
		apiKey:  cfg.RoutingAPIKey,
		logger:  logger,
	}
}

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type waypoint struct {
	Location struct {
		LatLng latLng `json:"latLng"`
	} `json:"location"`
}

type computeRoutesRequest struct {
	Origin                   waypoint `json:"origin"`
	Destination              waypoint `json:"destination"`
	TravelMode               string   `json:"travelMode"`
	ComputeAlternativeRoutes bool     `json:"computeAlternativeRoutes"`
}

type routePayload struct {
	Duration       string `json:"duration"`
	DistanceMeters int    `json:"distanceMeters"`
	Polyline       struct {
		EncodedPolyline string `json:"encodedPolyline"`
	} `json:"polyline"`
}

type computeRoutesResponse struct {
	Routes []routePayload `json:"routes"`
}

func makeWaypoint(c models.Coordinate) waypoint {
	var wp waypoint
	wp.Location.LatLng = latLng{Latitude: c.Latitude, Longitude: c.Longitude}
	return wp
}

// parseDurationSeconds разбирает длительность вида "1234s"
func parseDurationSeconds(raw string) int {
	trimmed := strings.TrimSuffix(strings.TrimSpace(raw), "s")
	if trimmed == "" {
		return 0
	}
	seconds, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0
	}
	return seconds
}

// GetRoutes запрашивает маршруты-кандидаты с альтернативами. Кандидат с
// некорректной полилинией отбрасывается по одному, остальные остаются
func (c *Client) GetRoutes(ctx context.Context, origin, destination models.Coordinate, mode models.TravelMode) ([]models.RouteCandidate, error) {
	log := c.logger.WithFields(logrus.Fields{
		"client": "routing",
		"mode":   mode,
	})

	reqBody := computeRoutesRequest{
		Origin:                   makeWaypoint(origin),
		Destination:              makeWaypoint(destination),
		TravelMode:               string(mode),
		ComputeAlternativeRoutes: true,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal routes request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create routes request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", routesFieldMask)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("routing request failed: %w: %w", models.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("routing provider returned status %d: %w", resp.StatusCode, models.ErrProviderUnavailable)
	}

	var parsed computeRoutesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode routes response: %w: %w", models.ErrProviderUnavailable, err)
	}

	candidates := make([]models.RouteCandidate, 0, len(parsed.Routes))
	for i, r := range parsed.Routes {
		points, err := decodePolyline(r.Polyline.EncodedPolyline)
		if err != nil || len(points) < 2 {
			log.WithError(err).WithField("index", i).Warn("Malformed candidate polyline, candidate rejected")
			continue
		}
		candidates = append(candidates, models.RouteCandidate{
			EncodedPolyline: r.Polyline.EncodedPolyline,
			Points:          points,
			DistanceM:       r.DistanceMeters,
			DurationS:       parseDurationSeconds(r.Duration),
		})
	}

	log.WithField("candidates", len(candidates)).Debug("Routing provider responded")
	return candidates, nil
}

// decodePolyline разбирает полилинию в стандартном знаково-дельтовом формате
// с точностью 5 знаков
func decodePolyline(encoded string) ([]models.Coordinate, error) {
	if encoded == "" {
		return nil, fmt.Errorf("empty polyline")
	}
	coords, remaining, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to decode polyline: %w", err)
	}
	if len(remaining) > 0 {
		return nil, fmt.Errorf("trailing bytes after polyline")
	}

	points := make([]models.Coordinate, 0, len(coords))
	for _, c := range coords {
		points = append(points, models.Coordinate{Latitude: c[0], Longitude: c[1]})
	}
	return points, nil
}
