package repository

import (
	"context"
	"fmt"

	"github.com/shenikar/pothole_reporting_system/internal/models"
	"github.com/shenikar/pothole_reporting_system/internal/service"
)

// ReportRepository хранит неизменяемый набор отчетов в памяти
type ReportRepository struct {
	reports []models.PotholeReport
	byID    map[string]int
}

func NewReportRepository(reports []models.PotholeReport) service.ReportRepository {
	repo := &ReportRepository{
		reports: make([]models.PotholeReport, len(reports)),
		byID:    make(map[string]int, len(reports)),
	}
	copy(repo.reports, reports)
	for i, r := range repo.reports {
		repo.byID[r.ID] = i
	}
	return repo
}

// List возвращает копию всех отчетов в исходном порядке
func (r *ReportRepository) List(ctx context.Context) ([]models.PotholeReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	out := make([]models.PotholeReport, len(r.reports))
	copy(out, r.reports)
	return out, nil
}

// GetByID возвращает отчет по его идентификатору
func (r *ReportRepository) GetByID(ctx context.Context, id string) (*models.PotholeReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	i, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("report with id %s: %w", id, models.ErrNotFound)
	}
	report := r.reports[i]
	return &report, nil
}
