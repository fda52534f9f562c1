package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Загрузка снимка и генерация отчета
	api.POST("/analyses", h.analyzeMedia)

	// Маршруты дашборда (только чтение)
	reports := api.Group("/reports")
	{
		reports.GET("", h.listReports)
		reports.GET("/stats", h.getStats)
		reports.GET("/breakdown", h.getBreakdown)
		reports.GET("/map", h.getMapClusters)
		reports.GET("/export", h.exportReports)
		reports.GET("/:id", h.getReport)
	}

	api.GET("/severity-levels", h.listSeverityLevels)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
