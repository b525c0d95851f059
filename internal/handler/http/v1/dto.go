package v1

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisPayload DTO с результатом NLP-анализа репорта
// @Description DTO с результатом NLP-анализа репорта
type AnalysisPayload struct {
	FloodDetected  *bool  `json:"flood_detected" validate:"required"`
	UrgencyScore   int    `json:"urgency_score" validate:"required,min=1,max=10"`
	ExtractedState string `json:"extracted_state,omitempty"`
	ExtractedCity  string `json:"extracted_city,omitempty"`
}

// IngestReportRequest DTO для приёма проанализированного репорта
// @Description DTO для приёма проанализированного репорта
type IngestReportRequest struct {
	Text         string          `json:"text" validate:"required,min=1,max=4000"`
	ReportedAt   *time.Time      `json:"timestamp,omitempty"`
	LocationHint string          `json:"location_hint,omitempty"`
	Analysis     AnalysisPayload `json:"analysis" validate:"required"`
}

// IngestReportResponse DTO для ответа на приём репорта
// @Description DTO для ответа на приём репорта
type IngestReportResponse struct {
	ReportID uuid.UUID `json:"report_id"`
}

// RouteDTO DTO одного маршрута в ответе
// @Description DTO одного маршрута в ответе
type RouteDTO struct {
	Polyline     string `json:"polyline"`
	DistanceM    int    `json:"distance_m"`
	DurationS    int    `json:"duration_s"`
	HazardCount  int    `json:"hazard_count"`
	HazardWeight int    `json:"hazard_weight"`
}

// HazardDTO DTO опасной зоны для отрисовки на клиенте
// @Description DTO опасной зоны для отрисовки на клиенте
type HazardDTO struct {
	ID        int64   `json:"id"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	RiskLevel string  `json:"risk_level"`
	RadiusM   int     `json:"radius_m"`
}

// SafeRouteResponse DTO для ответа с подобранным маршрутом
// @Description DTO для ответа с подобранным маршрутом
type SafeRouteResponse struct {
	BestRoute    RouteDTO    `json:"bestRoute"`
	Alternatives []RouteDTO  `json:"alternatives"`
	Hazards      []HazardDTO `json:"hazards"`
}

// AssessmentResponse DTO для ответа с оценкой риска
// @Description DTO для ответа с оценкой риска
type AssessmentResponse struct {
	ID             int64     `json:"id"`
	ReportID       uuid.UUID `json:"report_id"`
	FinalScore     float64   `json:"final_score"`
	RiskLevel      string    `json:"risk_level"`
	Recommendation string    `json:"recommendation"`
	CalculatedAt   time.Time `json:"calculated_at"`
}

// StatsResponse DTO для ответа со статистикой скоринга
// @Description DTO для ответа со статистикой скоринга
type StatsResponse struct {
	AssessmentCount int `json:"assessment_count"`
}
