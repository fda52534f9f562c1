// Package app собирает зависимости сервиса отчетов из конфигурации.
package app

import (
	"fmt"
	"time"

	"github.com/shenikar/pothole_reporting_system/internal/analysis"
	"github.com/shenikar/pothole_reporting_system/internal/config"
	"github.com/shenikar/pothole_reporting_system/internal/fixtures"
	"github.com/shenikar/pothole_reporting_system/internal/repository"
	"github.com/shenikar/pothole_reporting_system/internal/service"
	"github.com/sirupsen/logrus"
)

// GeneratorOptions переносит настройки генерации из конфигурации
func GeneratorOptions(cfg *config.Config) analysis.Options {
	return analysis.Options{
		DefaultAddress: cfg.DefaultAddress,
		DefaultLat:     cfg.DefaultLat,
		DefaultLng:     cfg.DefaultLng,
		Jitter:         cfg.LocationJitter,
		Tagging:        cfg.WeatherTagging,
	}
}

// NewReportService загружает набор отчетов и связывает репозиторий, генератор и сервис.
// now задает момент, относительно которого раскрываются created_ago в наборе.
func NewReportService(cfg *config.Config, log *logrus.Logger, now time.Time) (service.ReportService, error) {
	reports, err := fixtures.LoadFile(cfg.FixturesPath, now)
	if err != nil {
		return nil, fmt.Errorf("could not load reports dataset: %w", err)
	}
	log.WithFields(logrus.Fields{
		"reports": len(reports),
		"source":  datasetSource(cfg.FixturesPath),
	}).Info("Reports dataset loaded")

	rnd := analysis.NewRand(cfg.RandomSeed)
	estimator := analysis.NewRandomMockEstimator(rnd)
	generator := analysis.NewGenerator(estimator, rnd, GeneratorOptions(cfg))
	log.WithField("estimator", estimator.SourceName()).Info("Severity estimator initialized")

	repo := repository.NewReportRepository(reports)
	return service.NewReportService(repo, generator, log, cfg), nil
}

func datasetSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
