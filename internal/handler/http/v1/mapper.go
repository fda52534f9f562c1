package v1

import (
	"github.com/shenikar/pothole_reporting_system/internal/models"
	"github.com/shenikar/pothole_reporting_system/internal/severity"
	"github.com/shenikar/pothole_reporting_system/pkg/currency"
	"github.com/shopspring/decimal"
)

// DTOToLocation преобразует поля формы в адрес для генератора.
// Отсутствующие координаты становятся нулями.
func DTOToLocation(dto AnalyzeRequest) models.Location {
	loc := models.Location{Address: dto.Address}
	if dto.Lat != nil {
		loc.Lat = *dto.Lat
	}
	if dto.Lng != nil {
		loc.Lng = *dto.Lng
	}
	return loc
}

func DTOToFilter(dto ListReportsQuery) models.ReportFilter {
	return models.ReportFilter{
		Severity:     models.Severity(dto.Severity),
		AddressQuery: dto.Query,
	}
}

// DTOToViewport ожидает, что DTO уже прошел валидацию
func DTOToViewport(dto ViewportQuery) models.Viewport {
	return models.Viewport{
		LatMin: *dto.LatMin,
		LatMax: *dto.LatMax,
		LngMin: *dto.LngMin,
		LngMax: *dto.LngMax,
	}
}

// ModelToReportResponse преобразует доменную модель в DTO для ответа
func ModelToReportResponse(model *models.PotholeReport) *ReportResponse {
	return &ReportResponse{
		ID:       model.ID,
		ImageURL: model.ImageURL,
		Location: LocationResponse{
			Address: model.Location.Address,
			Lat:     model.Location.Lat,
			Lng:     model.Location.Lng,
		},
		Severity:      int(model.Severity),
		SeverityLabel: model.SeverityLabel,
		EstimatedCost: model.EstimatedCost,
		Dimensions: DimensionsResponse{
			Diameter: model.Dimensions.Diameter,
			Depth:    model.Dimensions.Depth,
		},
		CreatedAt:    model.CreatedAt,
		Status:       string(model.Status),
		Weather:      model.Weather,
		TrafficLevel: string(model.TrafficLevel),
	}
}

// ModelsToReportResponses преобразует слайс моделей в слайс DTO
func ModelsToReportResponses(reports []models.PotholeReport) []*ReportResponse {
	responses := make([]*ReportResponse, len(reports))
	for i := range reports {
		responses[i] = ModelToReportResponse(&reports[i])
	}
	return responses
}

// ModelToAnalysisResponse дополняет новый отчет справочной оценкой уровня
func ModelToAnalysisResponse(model *models.PotholeReport) *AnalysisResponse {
	level, _ := severity.Lookup(model.Severity)
	return &AnalysisResponse{
		Report: *ModelToReportResponse(model),
		Assessment: AssessmentResponse{
			Description:        level.Description,
			ReferenceDiameter:  level.Reference.Diameter,
			ReferenceDepth:     level.Reference.Depth,
			PriorityRepair:     severity.IsPriority(model.Severity),
			Recommendation:     severity.Recommendation(model.Severity),
			EstimatedCostLabel: currency.FormatInt(model.EstimatedCost),
		},
	}
}

func ModelToStatsResponse(stats *models.DashboardStats) *StatsResponse {
	avg := currency.Average(decimal.NewFromInt(int64(stats.TotalEstimatedCost)), stats.TotalReports)
	return &StatsResponse{
		TotalReports:            stats.TotalReports,
		PendingReports:          stats.PendingReports,
		TotalEstimatedCost:      stats.TotalEstimatedCost,
		TotalEstimatedCostLabel: currency.FormatInt(stats.TotalEstimatedCost),
		AvgCostPerReport:        avg.StringFixed(2),
		AvgSeverity:             stats.AvgSeverity,
		ReportsThisWeek:         stats.ReportsThisWeek,
		CriticalCount:           stats.CriticalCount,
	}
}

func ModelsToBreakdownResponses(rows []models.SeverityBreakdown) []*BreakdownResponse {
	responses := make([]*BreakdownResponse, len(rows))
	for i, row := range rows {
		responses[i] = &BreakdownResponse{
			Severity:       int(row.Severity),
			Label:          row.Label,
			Count:          row.Count,
			TotalCost:      row.TotalCost,
			TotalCostLabel: currency.FormatInt(row.TotalCost),
		}
	}
	return responses
}

func ModelsToMapClusterResponses(clusters []models.MapCluster) []*MapClusterResponse {
	responses := make([]*MapClusterResponse, len(clusters))
	for i, cl := range clusters {
		level, _ := severity.Lookup(cl.MaxSeverity)
		responses[i] = &MapClusterResponse{
			Lat:              cl.Lat,
			Lng:              cl.Lng,
			Count:            cl.Count,
			MaxSeverity:      int(cl.MaxSeverity),
			MaxSeverityLabel: level.Label,
		}
	}
	return responses
}

// LevelsToResponses преобразует справочную таблицу в DTO
func LevelsToResponses(levels []severity.Level) []*SeverityLevelResponse {
	responses := make([]*SeverityLevelResponse, len(levels))
	for i, l := range levels {
		responses[i] = &SeverityLevelResponse{
			Severity:          int(l.Severity),
			Label:             l.Label,
			BaseCost:          l.BaseCost,
			Diameter:          l.Dimensions.Diameter,
			Depth:             l.Dimensions.Depth,
			Description:       l.Description,
			ReferenceDiameter: l.Reference.Diameter,
			ReferenceDepth:    l.Reference.Depth,
			PriorityRepair:    severity.IsPriority(l.Severity),
		}
	}
	return responses
}
