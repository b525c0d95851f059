package v1

import (
	"time"

	"github.com/shenikar/flood_risk_system/internal/models"
)

// DTOToReportModels преобразует DTO приёма в доменные модели репорта и анализа
func DTOToReportModels(dto IngestReportRequest) (*models.FloodReport, *models.AnalysisResult) {
	reportedAt := time.Now().UTC()
	if dto.ReportedAt != nil {
		reportedAt = *dto.ReportedAt
	}

	report := &models.FloodReport{
		Text:         dto.Text,
		ReportedAt:   reportedAt,
		LocationHint: dto.LocationHint,
	}
	analysis := &models.AnalysisResult{
		FloodDetected:  dto.FloodDetected(),
		UrgencyScore:   dto.Analysis.UrgencyScore,
		ExtractedState: dto.Analysis.ExtractedState,
		ExtractedCity:  dto.Analysis.ExtractedCity,
	}
	return report, analysis
}

// FloodDetected возвращает значение флага после валидации
func (r IngestReportRequest) FloodDetected() bool {
	return r.Analysis.FloodDetected != nil && *r.Analysis.FloodDetected
}

// ModelToRouteDTO преобразует ранжированный маршрут в DTO
func ModelToRouteDTO(route models.RankedRoute) RouteDTO {
	return RouteDTO{
		Polyline:     route.Route.EncodedPolyline,
		DistanceM:    route.Route.DistanceM,
		DurationS:    route.Route.DurationS,
		HazardCount:  route.HazardCount,
		HazardWeight: route.HazardWeight,
	}
}

// ModelsToHazardDTOs преобразует слайс зон в слайс DTO
func ModelsToHazardDTOs(zones []models.HazardZone) []HazardDTO {
	dtos := make([]HazardDTO, len(zones))
	for i, z := range zones {
		dtos[i] = HazardDTO{
			ID:        z.ID,
			Latitude:  z.Latitude,
			Longitude: z.Longitude,
			RiskLevel: string(z.RiskLevel),
			RadiusM:   z.RadiusM,
		}
	}
	return dtos
}

// ModelToSafeRouteResponse преобразует результат подбора маршрута в DTO ответа
func ModelToSafeRouteResponse(result *models.SafeRouteResult) SafeRouteResponse {
	alternatives := make([]RouteDTO, len(result.Alternatives))
	for i, alt := range result.Alternatives {
		alternatives[i] = ModelToRouteDTO(alt)
	}
	return SafeRouteResponse{
		BestRoute:    ModelToRouteDTO(result.Best),
		Alternatives: alternatives,
		Hazards:      ModelsToHazardDTOs(result.Hazards),
	}
}

// ModelToAssessmentResponse преобразует оценку риска в DTO ответа
func ModelToAssessmentResponse(model *models.RiskAssessment) *AssessmentResponse {
	return &AssessmentResponse{
		ID:             model.ID,
		ReportID:       model.ReportID,
		FinalScore:     model.FinalScore,
		RiskLevel:      string(model.RiskLevel),
		Recommendation: model.Recommendation,
		CalculatedAt:   model.CalculatedAt,
	}
}

// ModelsToAssessmentResponses преобразует слайс оценок в слайс DTO
func ModelsToAssessmentResponses(assessments []*models.RiskAssessment) []*AssessmentResponse {
	responses := make([]*AssessmentResponse, len(assessments))
	for i, a := range assessments {
		responses[i] = ModelToAssessmentResponse(a)
	}
	return responses
}
