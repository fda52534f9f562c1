package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/pothole_reporting_system/internal/config"
	"github.com/shenikar/pothole_reporting_system/internal/models"
	"github.com/shenikar/pothole_reporting_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\x0dIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockReportService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockReportService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		MaxUploadMB: 1,
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// multipartBody собирает форму загрузки; пустое fileName - без файла
func multipartBody(t *testing.T, fileName string, content []byte, fields map[string]string) (*bytes.Buffer, map[string]string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if fileName != "" {
		part, err := writer.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, map[string]string{"Content-Type": writer.FormDataContentType()}
}

func sampleReport() *models.PotholeReport {
	return &models.PotholeReport{
		ID:            "3f0c2b1e-0000-4000-8000-000000000001",
		ImageURL:      "blob:3f0c2b1e",
		Location:      models.Location{Address: "42 Oak Avenue", Lat: 40.7, Lng: -74.0},
		Severity:      models.SeverityCritical,
		SeverityLabel: "Critical",
		EstimatedCost: 1470,
		Dimensions:    models.Dimensions{Diameter: "14 inches", Depth: "2.5 inches"},
		CreatedAt:     time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC),
		Status:        models.StatusPending,
		Weather:       "Rain",
		TrafficLevel:  models.TrafficHigh,
	}
}

func TestAnalyzeMedia_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expected := sampleReport()

	mockService.EXPECT().
		AnalyzeMedia(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, media *models.MediaRef, loc models.Location) (*models.PotholeReport, error) {
			assert.Equal(t, "hole.png", media.Name)
			assert.Equal(t, "image/png", media.ContentType)
			assert.Equal(t, int64(len(pngBytes)), media.Size)
			assert.Equal(t, models.Location{Address: "42 Oak Avenue", Lat: 40.7, Lng: -74.0}, loc)
			return expected, nil
		}).Times(1)

	body, headers := multipartBody(t, "hole.png", pngBytes, map[string]string{
		"address": "42 Oak Avenue",
		"lat":     "40.7",
		"lng":     "-74.0",
	})
	w := makeRequest(router, "POST", "/api/v1/analyses", body, headers)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp AnalysisResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, expected.ID, resp.Report.ID)
	assert.Equal(t, 4, resp.Report.Severity)
	assert.Equal(t, "high", resp.Report.TrafficLevel)
	assert.True(t, resp.Assessment.PriorityRepair)
	assert.Equal(t, "Priority Repair Recommended", resp.Assessment.Recommendation)
	assert.Equal(t, "> 12 inches", resp.Assessment.ReferenceDiameter)
	assert.Equal(t, "$1,470", resp.Assessment.EstimatedCostLabel)
}

func TestAnalyzeMedia_NoAddress(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		AnalyzeMedia(gomock.Any(), gomock.Any(), models.Location{}).
		Return(sampleReport(), nil).
		Times(1)

	body, headers := multipartBody(t, "hole.png", pngBytes, nil)
	w := makeRequest(router, "POST", "/api/v1/analyses", body, headers)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAnalyzeMedia_MissingFile(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().AnalyzeMedia(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	body, headers := multipartBody(t, "", nil, map[string]string{"address": "Main"})
	w := makeRequest(router, "POST", "/api/v1/analyses", body, headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "media file is required")
}

func TestAnalyzeMedia_UnsupportedType(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().AnalyzeMedia(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	body, headers := multipartBody(t, "hole.jpg", []byte("definitely not an image"), nil)
	w := makeRequest(router, "POST", "/api/v1/analyses", body, headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unsupported media type")
}

func TestAnalyzeMedia_TooLarge(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().AnalyzeMedia(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	content := append(append([]byte{}, pngBytes...), make([]byte, 1<<20)...)
	body, headers := multipartBody(t, "hole.png", content, nil)
	w := makeRequest(router, "POST", "/api/v1/analyses", body, headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "exceeds upload limit")
}

func TestAnalyzeMedia_InvalidLatitude(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().AnalyzeMedia(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	body, headers := multipartBody(t, "hole.png", pngBytes, map[string]string{"lat": "123"})
	w := makeRequest(router, "POST", "/api/v1/analyses", body, headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeMedia_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		AnalyzeMedia(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("estimator down")).
		Times(1)

	body, headers := multipartBody(t, "hole.png", pngBytes, nil)
	w := makeRequest(router, "POST", "/api/v1/analyses", body, headers)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestListReports_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		ListReports(gomock.Any(), models.ReportFilter{Severity: 4, AddressQuery: "oak"}).
		Return([]models.PotholeReport{*sampleReport()}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports?severity=4&q=oak", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []ReportResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "42 Oak Avenue", resp[0].Location.Address)
}

func TestListReports_EmptyResult(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		ListReports(gomock.Any(), models.ReportFilter{}).
		Return([]models.PotholeReport{}, nil)

	w := makeRequest(router, "GET", "/api/v1/reports", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListReports_InvalidSeverity(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListReports(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/reports?severity=7", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = makeRequest(router, "GET", "/api/v1/reports?severity=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetReport_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expected := sampleReport()

	mockService.EXPECT().GetReport(gomock.Any(), expected.ID).Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports/"+expected.ID, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, expected.ID, resp.ID)
	assert.Equal(t, "pending", resp.Status)
}

func TestGetReport_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		GetReport(gomock.Any(), "missing").
		Return(nil, models.ErrNotFound).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "report not found")
}

func TestGetStats_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetStats(gomock.Any()).Return(&models.DashboardStats{
		TotalReports:       3,
		PendingReports:     2,
		TotalEstimatedCost: 1295,
		AvgSeverity:        10.0 / 3.0,
		ReportsThisWeek:    2,
		CriticalCount:      2,
	}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.TotalReports)
	assert.Equal(t, "$1,295", resp.TotalEstimatedCostLabel)
	assert.Equal(t, "431.67", resp.AvgCostPerReport)
	assert.InDelta(t, 3.333, resp.AvgSeverity, 0.001)
}

func TestGetStats_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetStats(gomock.Any()).Return(nil, errors.New("db down")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports/stats", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetBreakdown(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetSeverityBreakdown(gomock.Any()).Return([]models.SeverityBreakdown{
		{Severity: 5, Label: "Extreme", Count: 2, TotalCost: 1480},
		{Severity: 1, Label: "Low", Count: 0, TotalCost: 0},
	}, nil)

	w := makeRequest(router, "GET", "/api/v1/reports/breakdown", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []BreakdownResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "$1,480", resp[0].TotalCostLabel)
	assert.Equal(t, "$0", resp[1].TotalCostLabel)
}

func TestGetMapClusters_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	vp := models.Viewport{LatMin: 40.5, LatMax: 41, LngMin: -74.5, LngMax: -73.5}

	mockService.EXPECT().GetMapClusters(gomock.Any(), vp).Return([]models.MapCluster{
		{Lat: 40.7, Lng: -74.0, Count: 3, MaxSeverity: 5},
	}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports/map?lat_min=40.5&lat_max=41&lng_min=-74.5&lng_max=-73.5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []MapClusterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Extreme", resp[0].MaxSeverityLabel)
}

func TestGetMapClusters_ZeroEdgeAllowed(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		GetMapClusters(gomock.Any(), models.Viewport{LatMin: -1, LatMax: 0, LngMin: 0, LngMax: 1}).
		Return([]models.MapCluster{}, nil)

	w := makeRequest(router, "GET", "/api/v1/reports/map?lat_min=-1&lat_max=0&lng_min=0&lng_max=1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetMapClusters_MissingParams(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetMapClusters(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/reports/map?lat_min=40", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMapClusters_InvalidViewport(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		GetMapClusters(gomock.Any(), gomock.Any()).
		Return(nil, models.ErrInvalidInput).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports/map?lat_min=41&lat_max=40&lng_min=-74&lng_max=-73", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportReports(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		ListReports(gomock.Any(), models.ReportFilter{Severity: 4}).
		Return([]models.PotholeReport{*sampleReport()}, nil)

	w := makeRequest(router, "GET", "/api/v1/reports/export?severity=4", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/geo+json", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "pothole_reports.geojson")

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			ID       string `json:"id"`
			Geometry struct {
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, []float64{-74.0, 40.7}, fc.Features[0].Geometry.Coordinates)
}

func TestListSeverityLevels(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/severity-levels", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []SeverityLevelResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 5)
	assert.Equal(t, "Low", resp[0].Label)
	assert.Equal(t, 720, resp[4].BaseCost)
	assert.False(t, resp[2].PriorityRepair)
	assert.True(t, resp[3].PriorityRepair)
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
