// Package query содержит чистые функции выборки и агрегации над переданным набором отчетов.
package query

import (
	"strings"

	"github.com/shenikar/pothole_reporting_system/internal/models"
)

// Filter возвращает отчеты, удовлетворяющие всем заданным условиям, сохраняя исходный порядок.
// Нулевой Severity и пустой AddressQuery ограничений не накладывают.
func Filter(reports []models.PotholeReport, f models.ReportFilter) []models.PotholeReport {
	query := strings.ToLower(f.AddressQuery)

	result := make([]models.PotholeReport, 0, len(reports))
	for _, r := range reports {
		if f.Severity != 0 && r.Severity != f.Severity {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(r.Location.Address), query) {
			continue
		}
		result = append(result, r)
	}
	return result
}
