package models

// DashboardStats - агрегаты по набору отчетов, всегда пересчитываются
type DashboardStats struct {
	TotalReports       int     `json:"total_reports" yaml:"total_reports"`
	PendingReports     int     `json:"pending_reports" yaml:"pending_reports"`
	TotalEstimatedCost int     `json:"total_estimated_cost" yaml:"total_estimated_cost"`
	AvgSeverity        float64 `json:"avg_severity" yaml:"avg_severity"`
	ReportsThisWeek    int     `json:"reports_this_week" yaml:"reports_this_week"`
	CriticalCount      int     `json:"critical_count" yaml:"critical_count"`
}

// SeverityBreakdown - количество и стоимость ремонта по одному уровню
type SeverityBreakdown struct {
	Severity  Severity `json:"severity" yaml:"severity"`
	Label     string   `json:"label" yaml:"label"`
	Count     int      `json:"count" yaml:"count"`
	TotalCost int      `json:"total_cost" yaml:"total_cost"`
}

// Viewport - прямоугольник карты в градусах
type Viewport struct {
	LatMin float64
	LatMax float64
	LngMin float64
	LngMax float64
}

// MapCluster - группа отчетов в одной ячейке S2
type MapCluster struct {
	Lat         float64  `json:"lat" yaml:"lat"`
	Lng         float64  `json:"lng" yaml:"lng"`
	Count       int      `json:"count" yaml:"count"`
	MaxSeverity Severity `json:"max_severity" yaml:"max_severity"`
}
