package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Публичные маршруты: подбор маршрута и снапшот опасных зон
	api.GET("/routes/safe", h.findSafeRoutes)
	api.GET("/hazards", h.listHazards)

	// Приём репортов защищён API-ключом
	reports := api.Group("/reports", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		reports.POST("", h.ingestReport)
	}

	// Оценки риска и статистика
	assessments := api.Group("/assessments", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		assessments.GET("", h.listAssessments)
		assessments.GET("/stats", h.getStats)
		assessments.GET("/:report_id", h.getAssessment)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
