package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/flood_risk_system/internal/config"
	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/shenikar/flood_risk_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	riskScorer   service.RiskScorer
	hazardIndex  service.HazardIndex
	routeService service.RouteService
	logger       *logrus.Logger
	validate     *validator.Validate
	cfg          *config.Config
	clock        clockwork.Clock
}

func NewHandler(riskScorer service.RiskScorer, hazardIndex service.HazardIndex, routeService service.RouteService, logger *logrus.Logger, cfg *config.Config, clock clockwork.Clock) *Handler {
	return &Handler{
		riskScorer:   riskScorer,
		hazardIndex:  hazardIndex,
		routeService: routeService,
		logger:       logger,
		validate:     validator.New(),
		cfg:          cfg,
		clock:        clock,
	}
}

// @Summary Ingest an analyzed flood report
// @Description Accept a social-media flood report with its NLP analysis, persist it and queue risk scoring. Requires API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param report body IngestReportRequest true "Analyzed report"
// @Success 202 {object} IngestReportResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [post]
func (h *Handler) ingestReport(c *gin.Context) {
	var input IngestReportRequest
	log := h.logger.WithField("method", "ingestReport")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, analysis := DTOToReportModels(input)
	if err := h.riskScorer.IngestReport(c.Request.Context(), report, analysis); err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			log.WithError(err).Warn("Report rejected")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to ingest report in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusAccepted, IngestReportResponse{ReportID: report.ID})
}

// @Summary Find the safest route
// @Description Evaluate candidate routes against active flood hazard zones and return the safest one with alternatives.
// @Tags Routes
// @Accept json
// @Produce json
// @Param origin query string true "Origin as 'lat,lng' or a place name"
// @Param destination query string true "Destination as 'lat,lng' or a place name"
// @Param travelMode query string false "Travel mode" Enums(DRIVE, WALK, TWO_WHEELER) default(DRIVE)
// @Success 200 {object} SafeRouteResponse
// @Failure 400 {object} map[string]string "Invalid origin, destination or travel mode"
// @Failure 404 {object} map[string]string "No viable route found"
// @Failure 502 {object} map[string]string "Upstream provider failed"
// @Router /routes/safe [get]
func (h *Handler) findSafeRoutes(c *gin.Context) {
	log := h.logger.WithField("method", "findSafeRoutes")

	origin := c.Query("origin")
	destination := c.Query("destination")
	travelMode := c.DefaultQuery("travelMode", string(models.TravelModeDrive))

	result, err := h.routeService.FindSafeRoutes(c.Request.Context(), origin, destination, travelMode)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidInput):
			log.WithError(err).Warn("Invalid route query")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, models.ErrNoRoutesAvailable):
			log.WithError(err).Info("No routes available")
			c.JSON(http.StatusNotFound, gin.H{"error": "no_routes_available"})
		case errors.Is(err, models.ErrProviderUnavailable):
			log.WithError(err).Error("Upstream provider unavailable")
			c.JSON(http.StatusBadGateway, gin.H{"error": "provider_unavailable"})
		default:
			log.WithError(err).Error("Failed to evaluate routes in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, ModelToSafeRouteResponse(result))
}

// @Summary List current hazard zones
// @Description Get the snapshot of active flood hazard zones built from fresh risk assessments.
// @Tags Hazards
// @Accept json
// @Produce json
// @Success 200 {array} HazardDTO
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards [get]
func (h *Handler) listHazards(c *gin.Context) {
	log := h.logger.WithField("method", "listHazards")

	zones, err := h.hazardIndex.CurrentHazards(c.Request.Context(), h.clock.Now().UTC(), h.cfg.HazardFreshness)
	if err != nil {
		log.WithError(err).Error("Failed to build hazard snapshot")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToHazardDTOs(zones))
}

// @Summary Get a list of risk assessments
// @Description Get a paginated list of risk assessments. Requires API key.
// @Tags Assessments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} AssessmentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /assessments [get]
func (h *Handler) listAssessments(c *gin.Context) {
	log := h.logger.WithField("method", "listAssessments")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	assessments, err := h.riskScorer.ListAssessments(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list assessments from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToAssessmentResponses(assessments))
}

// @Summary Get assessment by report ID
// @Description Get the current risk assessment of a report. Requires API key.
// @Tags Assessments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param report_id path string true "Report ID"
// @Success 200 {object} AssessmentResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Assessment not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /assessments/{report_id} [get]
func (h *Handler) getAssessment(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("report_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "getAssessment").WithField("report_id", reportID)

	assessment, err := h.riskScorer.GetAssessment(c.Request.Context(), reportID)
	if err != nil {
		if errors.Is(err, models.ErrAssessmentNotFound) {
			log.WithError(err).Info("Assessment not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "assessment not found"})
			return
		}
		log.WithError(err).Error("Failed to get assessment from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToAssessmentResponse(assessment))
}

// @Summary Get scoring statistics
// @Description Get the count of risk assessments calculated within the stats window. Requires API key.
// @Tags Assessments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /assessments/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	count, err := h.riskScorer.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{AssessmentCount: count})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
