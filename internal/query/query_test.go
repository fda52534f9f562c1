package query

import (
	"testing"
	"time"

	"github.com/shenikar/pothole_reporting_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func report(id string, sev models.Severity, cost int, address string) models.PotholeReport {
	return models.PotholeReport{
		ID:            id,
		Severity:      sev,
		EstimatedCost: cost,
		Location:      models.Location{Address: address},
		Status:        models.StatusPending,
		CreatedAt:     testNow.Add(-time.Hour),
	}
}

func testReports() []models.PotholeReport {
	return []models.PotholeReport{
		report("a", 3, 330, "123 Main Street, Downtown"),
		report("b", 1, 90, "42 Oak Avenue"),
		report("c", 3, 340, "7 MAIN Boulevard"),
		report("d", 5, 740, "main street overpass"),
		report("e", 3, 325, "18 Elm Road"),
	}
}

func ids(reports []models.PotholeReport) []string {
	out := make([]string, len(reports))
	for i, r := range reports {
		out[i] = r.ID
	}
	return out
}

func TestFilter_BySeverityPreservesOrder(t *testing.T) {
	got := Filter(testReports(), models.ReportFilter{Severity: 3})

	assert.Equal(t, []string{"a", "c", "e"}, ids(got))
	for _, r := range got {
		assert.Equal(t, models.Severity(3), r.Severity)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	f := models.ReportFilter{Severity: 3}
	once := Filter(testReports(), f)
	twice := Filter(once, f)

	assert.Equal(t, once, twice)
}

func TestFilter_AddressCaseInsensitive(t *testing.T) {
	got := Filter(testReports(), models.ReportFilter{AddressQuery: "main"})
	assert.Equal(t, []string{"a", "c", "d"}, ids(got))

	got = Filter(testReports(), models.ReportFilter{AddressQuery: "MAIN STREET"})
	assert.Equal(t, []string{"a", "d"}, ids(got))
}

func TestFilter_Composed(t *testing.T) {
	got := Filter(testReports(), models.ReportFilter{Severity: 3, AddressQuery: "main"})
	assert.Equal(t, []string{"a", "c"}, ids(got))
}

func TestFilter_NoConstraints(t *testing.T) {
	got := Filter(testReports(), models.ReportFilter{})
	assert.Equal(t, testReports(), got)
}

func TestFilter_EmptyResult(t *testing.T) {
	got := Filter(testReports(), models.ReportFilter{Severity: 2})
	require.NotNil(t, got)
	assert.Empty(t, got)

	got = Filter(nil, models.ReportFilter{AddressQuery: "main"})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAggregate_Empty(t *testing.T) {
	stats := Aggregate(nil, testNow)
	assert.Equal(t, models.DashboardStats{}, stats)
}

func TestAggregate_Scenario(t *testing.T) {
	reports := []models.PotholeReport{
		report("a", 1, 85, "x"),
		report("b", 4, 470, "y"),
		report("c", 5, 740, "z"),
	}

	stats := Aggregate(reports, testNow)

	assert.Equal(t, 3, stats.TotalReports)
	assert.Equal(t, 2, stats.CriticalCount)
	assert.Equal(t, 1295, stats.TotalEstimatedCost)
	assert.InDelta(t, 3.33, stats.AvgSeverity, 0.01)
	assert.Equal(t, 3, stats.PendingReports)
	assert.Equal(t, 3, stats.ReportsThisWeek)
}

func TestAggregate_StatusAndWeekWindow(t *testing.T) {
	reports := []models.PotholeReport{
		{ID: "new", Severity: 2, Status: models.StatusPending, CreatedAt: testNow.Add(-24 * time.Hour)},
		{ID: "edge", Severity: 2, Status: models.StatusReviewed, CreatedAt: testNow.Add(-WeekWindow)},
		{ID: "old", Severity: 2, Status: models.StatusRepaired, CreatedAt: testNow.Add(-WeekWindow - time.Second)},
		{ID: "future", Severity: 2, Status: models.StatusScheduled, CreatedAt: testNow.Add(time.Hour)},
	}

	stats := Aggregate(reports, testNow)

	assert.Equal(t, 4, stats.TotalReports)
	assert.Equal(t, 1, stats.PendingReports)
	assert.Equal(t, 2, stats.ReportsThisWeek)
	assert.Equal(t, 0, stats.CriticalCount)
	assert.Equal(t, 2.0, stats.AvgSeverity)
}

func TestBreakdownBySeverity(t *testing.T) {
	rows := BreakdownBySeverity(testReports())

	require.Len(t, rows, 5)
	assert.Equal(t, models.SeverityBreakdown{Severity: 5, Label: "Extreme", Count: 1, TotalCost: 740}, rows[0])
	assert.Equal(t, models.SeverityBreakdown{Severity: 4, Label: "Critical"}, rows[1])
	assert.Equal(t, models.SeverityBreakdown{Severity: 3, Label: "High", Count: 3, TotalCost: 995}, rows[2])
	assert.Equal(t, models.SeverityBreakdown{Severity: 2, Label: "Medium"}, rows[3])
	assert.Equal(t, models.SeverityBreakdown{Severity: 1, Label: "Low", Count: 1, TotalCost: 90}, rows[4])
}

func TestBreakdownBySeverity_Empty(t *testing.T) {
	rows := BreakdownBySeverity(nil)
	require.Len(t, rows, 5)
	for _, r := range rows {
		assert.Zero(t, r.Count)
		assert.Zero(t, r.TotalCost)
	}
}
