// Package analysis строит отчеты о выбоинах из выбранного медиафайла.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/pothole_reporting_system/internal/models"
	"github.com/shenikar/pothole_reporting_system/internal/severity"
)

const jitterSpan = 0.1

// ErrUnknownSeverity возвращается, если оценщик выдал уровень вне таблицы
var ErrUnknownSeverity = errors.New("estimator returned unknown severity")

var (
	weatherTags   = []string{"Clear", "Rain", "Cloudy", "Snow"}
	trafficLevels = []models.TrafficLevel{models.TrafficLow, models.TrafficMedium, models.TrafficHigh}
)

// Options управляет косметическими полями отчета
type Options struct {
	DefaultAddress string
	DefaultLat     float64
	DefaultLng     float64
	// Jitter смещает координаты адреса по умолчанию на величину до ±0.05
	Jitter bool
	// Tagging заполняет weather и traffic_level
	Tagging bool
}

func DefaultOptions() Options {
	return Options{
		DefaultAddress: "123 Main Street, Downtown",
		DefaultLat:     40.7128,
		DefaultLng:     -74.0060,
		Jitter:         true,
		Tagging:        true,
	}
}

// Generator собирает PotholeReport из оценки уровня и справочной таблицы
type Generator struct {
	estimator SeverityEstimator
	rnd       *Rand
	opts      Options
	now       func() time.Time
	newID     func() string
}

func NewGenerator(estimator SeverityEstimator, rnd *Rand, opts Options) *Generator {
	return &Generator{
		estimator: estimator,
		rnd:       rnd,
		opts:      opts,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Generate создает новый отчет в статусе pending.
// Пустой адрес заменяется адресом по умолчанию, иначе используются координаты вызывающего.
func (g *Generator) Generate(ctx context.Context, media *models.MediaRef, loc models.Location) (*models.PotholeReport, error) {
	if media == nil {
		return nil, fmt.Errorf("%w: media file is required", models.ErrInvalidInput)
	}

	sev, err := g.estimator.EstimateSeverity(ctx, media)
	if err != nil {
		return nil, fmt.Errorf("failed to estimate severity: %w", err)
	}
	level, ok := severity.Lookup(sev)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSeverity, sev)
	}

	id := g.newID()
	report := &models.PotholeReport{
		ID:            id,
		ImageURL:      media.URL,
		Location:      g.resolveLocation(loc),
		Severity:      level.Severity,
		SeverityLabel: level.Label,
		EstimatedCost: level.BaseCost + g.rnd.IntN(severity.CostJitter),
		Dimensions:    level.Dimensions,
		CreatedAt:     g.now().UTC(),
		Status:        models.StatusPending,
	}
	if report.ImageURL == "" {
		report.ImageURL = "blob:" + id
	}

	if g.opts.Tagging {
		report.Weather = weatherTags[g.rnd.IntN(len(weatherTags))]
		report.TrafficLevel = trafficLevels[g.rnd.IntN(len(trafficLevels))]
	}
	return report, nil
}

func (g *Generator) resolveLocation(loc models.Location) models.Location {
	if loc.Address != "" {
		return loc
	}

	resolved := models.Location{
		Address: g.opts.DefaultAddress,
		Lat:     g.opts.DefaultLat,
		Lng:     g.opts.DefaultLng,
	}
	if g.opts.Jitter {
		resolved.Lat += (g.rnd.Float64() - 0.5) * jitterSpan
		resolved.Lng += (g.rnd.Float64() - 0.5) * jitterSpan
	}
	return resolved
}
