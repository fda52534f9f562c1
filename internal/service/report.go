package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/pothole_reporting_system/internal/config"
	"github.com/shenikar/pothole_reporting_system/internal/metrics"
	"github.com/shenikar/pothole_reporting_system/internal/models"
	"github.com/shenikar/pothole_reporting_system/internal/query"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=report.go -destination=mocks/mock_report.go -package=mocks

// ReportRepository определяет контракт доступа к набору отчетов
type ReportRepository interface {
	List(ctx context.Context) ([]models.PotholeReport, error)
	GetByID(ctx context.Context, id string) (*models.PotholeReport, error)
}

// ReportGenerator создает новый отчет по медиафайлу
type ReportGenerator interface {
	Generate(ctx context.Context, media *models.MediaRef, loc models.Location) (*models.PotholeReport, error)
}

// ReportService определяет контракт бизнес-логики анализа и дашборда
type ReportService interface {
	AnalyzeMedia(ctx context.Context, media *models.MediaRef, loc models.Location) (*models.PotholeReport, error)
	ListReports(ctx context.Context, filter models.ReportFilter) ([]models.PotholeReport, error)
	GetReport(ctx context.Context, id string) (*models.PotholeReport, error)
	GetStats(ctx context.Context) (*models.DashboardStats, error)
	GetSeverityBreakdown(ctx context.Context) ([]models.SeverityBreakdown, error)
	GetMapClusters(ctx context.Context, vp models.Viewport) ([]models.MapCluster, error)
}

type reportService struct {
	repo      ReportRepository
	generator ReportGenerator
	logger    *logrus.Logger
	delay     time.Duration
	now       func() time.Time
}

func NewReportService(repo ReportRepository, generator ReportGenerator, logger *logrus.Logger, cfg *config.Config) ReportService {
	return &reportService{
		repo:      repo,
		generator: generator,
		logger:    logger,
		delay:     cfg.AnalysisDelay,
		now:       time.Now,
	}
}

// AnalyzeMedia имитирует обработку снимка и возвращает новый отчет.
// Результат не сохраняется.
func (s *reportService) AnalyzeMedia(ctx context.Context, media *models.MediaRef, loc models.Location) (*models.PotholeReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "AnalyzeMedia",
		"address": loc.Address,
	})

	if media == nil {
		metrics.AnalysisFailuresTotal.WithLabelValues("invalid_input").Inc()
		log.Warn("Analysis requested without media")
		return nil, fmt.Errorf("service: could not analyze media: %w: media file is required", models.ErrInvalidInput)
	}
	log = log.WithField("media", media.Name)
	log.Info("Starting media analysis")

	start := time.Now()
	if err := s.simulateProcessing(ctx); err != nil {
		metrics.AnalysisFailuresTotal.WithLabelValues("canceled").Inc()
		log.WithError(err).Warn("Analysis canceled")
		return nil, fmt.Errorf("service: analysis canceled: %w", err)
	}

	report, err := s.generator.Generate(ctx, media, loc)
	if err != nil {
		reason := "estimator"
		if errors.Is(err, models.ErrInvalidInput) {
			reason = "invalid_input"
		}
		metrics.AnalysisFailuresTotal.WithLabelValues(reason).Inc()
		log.WithError(err).Error("Failed to generate report")
		return nil, fmt.Errorf("service: could not analyze media: %w", err)
	}

	metrics.AnalysisDurationSeconds.Observe(time.Since(start).Seconds())
	metrics.AnalysesTotal.WithLabelValues(metrics.SeverityLabel(report.Severity)).Inc()
	log.WithFields(logrus.Fields{
		"report_id": report.ID,
		"severity":  report.Severity,
	}).Info("Media analyzed successfully")
	return report, nil
}

func (s *reportService) simulateProcessing(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// ListReports возвращает отчеты, отфильтрованные по уровню и адресу
func (s *reportService) ListReports(ctx context.Context, filter models.ReportFilter) ([]models.PotholeReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "report",
		"method":   "ListReports",
		"severity": filter.Severity,
		"query":    filter.AddressQuery,
	})

	if filter.Severity != 0 && !filter.Severity.Valid() {
		log.Warn("Invalid severity filter")
		return nil, fmt.Errorf("service: %w: severity must be between 1 and 5", models.ErrInvalidInput)
	}

	reports, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from repository")
		return nil, fmt.Errorf("service: could not list reports: %w", err)
	}

	filtered := query.Filter(reports, filter)
	metrics.QueriesTotal.WithLabelValues("list").Inc()
	log.WithField("count", len(filtered)).Info("Reports listed successfully")
	return filtered, nil
}

// GetReport получает отчет по ID
func (s *reportService) GetReport(ctx context.Context, id string) (*models.PotholeReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "GetReport",
		"report_id": id,
	})

	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get report from repository")
		return nil, fmt.Errorf("service: could not get report: %w", err)
	}
	metrics.QueriesTotal.WithLabelValues("get").Inc()
	return report, nil
}

// GetStats считает статистику дашборда на текущий момент
func (s *reportService) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "GetStats",
	})

	reports, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from repository")
		return nil, fmt.Errorf("service: could not get stats: %w", err)
	}

	stats := query.Aggregate(reports, s.now())
	metrics.QueriesTotal.WithLabelValues("stats").Inc()
	log.WithField("total_reports", stats.TotalReports).Debug("Stats computed")
	return &stats, nil
}

func (s *reportService) GetSeverityBreakdown(ctx context.Context) ([]models.SeverityBreakdown, error) {
	reports, err := s.repo.List(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("method", "GetSeverityBreakdown").Error("Failed to list reports from repository")
		return nil, fmt.Errorf("service: could not get severity breakdown: %w", err)
	}
	metrics.QueriesTotal.WithLabelValues("breakdown").Inc()
	return query.BreakdownBySeverity(reports), nil
}

// GetMapClusters группирует отчеты внутри viewport для карты
func (s *reportService) GetMapClusters(ctx context.Context, vp models.Viewport) ([]models.MapCluster, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "GetMapClusters",
	})

	if err := query.ValidateViewport(vp); err != nil {
		log.WithError(err).Warn("Invalid viewport")
		return nil, fmt.Errorf("service: %w", err)
	}

	reports, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from repository")
		return nil, fmt.Errorf("service: could not get map clusters: %w", err)
	}

	clusters, err := query.Cluster(reports, vp)
	if err != nil {
		return nil, fmt.Errorf("service: could not cluster reports: %w", err)
	}
	metrics.QueriesTotal.WithLabelValues("map").Inc()
	log.WithField("clusters", len(clusters)).Info("Map clusters computed")
	return clusters, nil
}
