package query

import (
	"time"

	"github.com/shenikar/pothole_reporting_system/internal/models"
	"github.com/shenikar/pothole_reporting_system/internal/severity"
)

// WeekWindow - окно для подсчета reports_this_week
const WeekWindow = 7 * 24 * time.Hour

// Aggregate считает статистику для дашборда на момент now
func Aggregate(reports []models.PotholeReport, now time.Time) models.DashboardStats {
	stats := models.DashboardStats{TotalReports: len(reports)}
	if len(reports) == 0 {
		return stats
	}

	weekStart := now.Add(-WeekWindow)
	severitySum := 0
	for _, r := range reports {
		if r.Status == models.StatusPending {
			stats.PendingReports++
		}
		stats.TotalEstimatedCost += r.EstimatedCost
		severitySum += int(r.Severity)
		if severity.IsPriority(r.Severity) {
			stats.CriticalCount++
		}
		if !r.CreatedAt.Before(weekStart) && !r.CreatedAt.After(now) {
			stats.ReportsThisWeek++
		}
	}
	stats.AvgSeverity = float64(severitySum) / float64(len(reports))
	return stats
}

// BreakdownBySeverity возвращает по строке на каждый уровень, от Extreme к Low
func BreakdownBySeverity(reports []models.PotholeReport) []models.SeverityBreakdown {
	levels := severity.Levels()
	rows := make([]models.SeverityBreakdown, len(levels))
	for i, l := range levels {
		// обратный порядок, как в карточке дашборда
		rows[len(levels)-1-i] = models.SeverityBreakdown{Severity: l.Severity, Label: l.Label}
	}

	for _, r := range reports {
		if !r.Severity.Valid() {
			continue
		}
		row := &rows[int(models.SeverityExtreme-r.Severity)]
		row.Count++
		row.TotalCost += r.EstimatedCost
	}
	return rows
}
