package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/pothole_reporting_system/internal/config"
	"github.com/shenikar/pothole_reporting_system/internal/export"
	"github.com/shenikar/pothole_reporting_system/internal/media"
	"github.com/shenikar/pothole_reporting_system/internal/models"
	"github.com/shenikar/pothole_reporting_system/internal/service"
	"github.com/shenikar/pothole_reporting_system/internal/severity"
	"github.com/sirupsen/logrus"
)

// запас на остальные поля multipart-формы
const formOverhead = 1 << 20

type Handler struct {
	reportService service.ReportService
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(reportService service.ReportService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		reportService: reportService,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// @Summary Analyze a pothole photo or video
// @Description Upload media and receive a freshly generated pothole report. The report is not stored.
// @Tags Analyses
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Pothole photo or video"
// @Param address formData string false "Street address; empty uses the default location"
// @Param lat formData number false "Latitude"
// @Param lng formData number false "Longitude"
// @Success 201 {object} AnalysisResponse
// @Failure 400 {object} map[string]string "Missing file, unsupported type or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /analyses [post]
func (h *Handler) analyzeMedia(c *gin.Context) {
	log := h.logger.WithField("method", "analyzeMedia")
	limit := h.cfg.MaxUploadBytes()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+formOverhead)

	var input AnalyzeRequest
	if err := c.ShouldBind(&input); err != nil {
		log.WithError(err).Warn("Failed to bind form")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		log.WithError(err).Warn("Media file missing")
		c.JSON(http.StatusBadRequest, gin.H{"error": "media file is required"})
		return
	}
	if fileHeader.Size > limit {
		log.WithField("size", fileHeader.Size).Warn("Media file too large")
		c.JSON(http.StatusBadRequest, gin.H{"error": "media file exceeds upload limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.WithError(err).Error("Failed to open uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	defer file.Close()

	ref, err := media.Sniff(file, fileHeader.Filename, fileHeader.Size)
	if err != nil {
		h.writeError(c, log, err)
		return
	}

	report, err := h.reportService.AnalyzeMedia(c.Request.Context(), ref, DTOToLocation(input))
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAnalysisResponse(report))
}

// @Summary List pothole reports
// @Description Get reports filtered by exact severity and case-insensitive address substring
// @Tags Reports
// @Accept json
// @Produce json
// @Param severity query int false "Severity 1..5"
// @Param q query string false "Address substring"
// @Success 200 {array} ReportResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [get]
func (h *Handler) listReports(c *gin.Context) {
	log := h.logger.WithField("method", "listReports")

	filter, ok := h.bindFilter(c, log)
	if !ok {
		return
	}

	reports, err := h.reportService.ListReports(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToReportResponses(reports))
}

// @Summary Get report by ID
// @Description Get a single pothole report by its ID
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} ReportResponse
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{id} [get]
func (h *Handler) getReport(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getReport").WithField("id", id)

	report, err := h.reportService.GetReport(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToReportResponse(report))
}

// @Summary Get dashboard statistics
// @Description Aggregate statistics over all reports at the current instant
// @Tags Reports
// @Accept json
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.reportService.GetStats(c.Request.Context())
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToStatsResponse(stats))
}

// @Summary Get severity breakdown
// @Description Report count and total repair cost per severity level, Extreme first
// @Tags Reports
// @Accept json
// @Produce json
// @Success 200 {array} BreakdownResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/breakdown [get]
func (h *Handler) getBreakdown(c *gin.Context) {
	log := h.logger.WithField("method", "getBreakdown")

	rows, err := h.reportService.GetSeverityBreakdown(c.Request.Context())
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToBreakdownResponses(rows))
}

// @Summary Get map clusters
// @Description Reports inside the viewport grouped into S2 cells
// @Tags Reports
// @Accept json
// @Produce json
// @Param lat_min query number true "South edge"
// @Param lat_max query number true "North edge"
// @Param lng_min query number true "West edge"
// @Param lng_max query number true "East edge"
// @Success 200 {array} MapClusterResponse
// @Failure 400 {object} map[string]string "Invalid viewport"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/map [get]
func (h *Handler) getMapClusters(c *gin.Context) {
	log := h.logger.WithField("method", "getMapClusters")

	var input ViewportQuery
	if err := c.ShouldBindQuery(&input); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	clusters, err := h.reportService.GetMapClusters(c.Request.Context(), DTOToViewport(input))
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToMapClusterResponses(clusters))
}

// @Summary Export reports as GeoJSON
// @Description Download the filtered reports as a GeoJSON FeatureCollection
// @Tags Reports
// @Produce json
// @Param severity query int false "Severity 1..5"
// @Param q query string false "Address substring"
// @Success 200 {object} map[string]interface{} "GeoJSON FeatureCollection"
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/export [get]
func (h *Handler) exportReports(c *gin.Context) {
	log := h.logger.WithField("method", "exportReports")

	filter, ok := h.bindFilter(c, log)
	if !ok {
		return
	}

	reports, err := h.reportService.ListReports(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, log, err)
		return
	}

	data, err := export.GeoJSON(reports)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="pothole_reports.geojson"`)
	c.Data(http.StatusOK, "application/geo+json", data)
}

// @Summary List severity levels
// @Description Reference table of severity levels with ASTM D6433 ranges
// @Tags Reference
// @Produce json
// @Success 200 {array} SeverityLevelResponse
// @Router /severity-levels [get]
func (h *Handler) listSeverityLevels(c *gin.Context) {
	c.JSON(http.StatusOK, LevelsToResponses(severity.Levels()))
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

func (h *Handler) bindFilter(c *gin.Context, log *logrus.Entry) (models.ReportFilter, bool) {
	var input ListReportsQuery
	if err := c.ShouldBindQuery(&input); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return models.ReportFilter{}, false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return models.ReportFilter{}, false
	}
	return DTOToFilter(input), true
}

// writeError отображает доменные ошибки на HTTP-коды
func (h *Handler) writeError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		log.WithError(err).Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Report not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
