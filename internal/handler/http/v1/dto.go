package v1

import (
	"time"
)

// AnalyzeRequest DTO полей формы загрузки снимка
// @Description DTO полей формы загрузки снимка
type AnalyzeRequest struct {
	Address string   `form:"address" validate:"max=255"`
	Lat     *float64 `form:"lat" validate:"omitempty,latitude"`
	Lng     *float64 `form:"lng" validate:"omitempty,longitude"`
}

// ListReportsQuery DTO параметров фильтрации списка
// @Description DTO параметров фильтрации списка
type ListReportsQuery struct {
	Severity int    `form:"severity" validate:"omitempty,min=1,max=5"`
	Query    string `form:"q" validate:"max=255"`
}

// ViewportQuery DTO прямоугольника карты
// @Description DTO прямоугольника карты
type ViewportQuery struct {
	LatMin *float64 `form:"lat_min" validate:"required,latitude"`
	LatMax *float64 `form:"lat_max" validate:"required,latitude"`
	LngMin *float64 `form:"lng_min" validate:"required,longitude"`
	LngMax *float64 `form:"lng_max" validate:"required,longitude"`
}

// LocationResponse DTO адреса и координат отчета
type LocationResponse struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// DimensionsResponse DTO размеров выбоины
type DimensionsResponse struct {
	Diameter string `json:"diameter"`
	Depth    string `json:"depth"`
}

// ReportResponse DTO для ответа с отчетом о выбоине
// @Description DTO для ответа с отчетом о выбоине
type ReportResponse struct {
	ID            string             `json:"id"`
	ImageURL      string             `json:"image_url"`
	Location      LocationResponse   `json:"location"`
	Severity      int                `json:"severity"`
	SeverityLabel string             `json:"severity_label"`
	EstimatedCost int                `json:"estimated_cost"`
	Dimensions    DimensionsResponse `json:"dimensions"`
	CreatedAt     time.Time          `json:"created_at"`
	Status        string             `json:"status"`
	Weather       string             `json:"weather,omitempty"`
	TrafficLevel  string             `json:"traffic_level,omitempty"`
}

// AssessmentResponse DTO экспертной оценки для нового отчета
// @Description DTO экспертной оценки для нового отчета
type AssessmentResponse struct {
	Description        string `json:"description"`
	ReferenceDiameter  string `json:"reference_diameter"`
	ReferenceDepth     string `json:"reference_depth"`
	PriorityRepair     bool   `json:"priority_repair"`
	Recommendation     string `json:"recommendation"`
	EstimatedCostLabel string `json:"estimated_cost_label"`
}

// AnalysisResponse DTO для ответа на загрузку снимка
// @Description DTO для ответа на загрузку снимка
type AnalysisResponse struct {
	Report     ReportResponse     `json:"report"`
	Assessment AssessmentResponse `json:"assessment"`
}

// StatsResponse DTO для ответа со статистикой дашборда
// @Description DTO для ответа со статистикой дашборда
type StatsResponse struct {
	TotalReports            int     `json:"total_reports"`
	PendingReports          int     `json:"pending_reports"`
	TotalEstimatedCost      int     `json:"total_estimated_cost"`
	TotalEstimatedCostLabel string  `json:"total_estimated_cost_label"`
	AvgCostPerReport        string  `json:"avg_cost_per_report"`
	AvgSeverity             float64 `json:"avg_severity"`
	ReportsThisWeek         int     `json:"reports_this_week"`
	CriticalCount           int     `json:"critical_count"`
}

// BreakdownResponse DTO строки разбивки по уровням
// @Description DTO строки разбивки по уровням
type BreakdownResponse struct {
	Severity       int    `json:"severity"`
	Label          string `json:"label"`
	Count          int    `json:"count"`
	TotalCost      int    `json:"total_cost"`
	TotalCostLabel string `json:"total_cost_label"`
}

// MapClusterResponse DTO кластера на карте
// @Description DTO кластера на карте
type MapClusterResponse struct {
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	Count            int     `json:"count"`
	MaxSeverity      int     `json:"max_severity"`
	MaxSeverityLabel string  `json:"max_severity_label"`
}

// SeverityLevelResponse DTO справочной строки уровня
// @Description DTO справочной строки уровня
type SeverityLevelResponse struct {
	Severity          int    `json:"severity"`
	Label             string `json:"label"`
	BaseCost          int    `json:"base_cost"`
	Diameter          string `json:"diameter"`
	Depth             string `json:"depth"`
	Description       string `json:"description"`
	ReferenceDiameter string `json:"reference_diameter"`
	ReferenceDepth    string `json:"reference_depth"`
	PriorityRepair    bool   `json:"priority_repair"`
}
