// Package fixtures загружает набор отчетов из YAML для дашборда.
package fixtures

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/pothole_reporting_system/internal/models"
	"github.com/shenikar/pothole_reporting_system/internal/severity"
	"gopkg.in/yaml.v3"
)

//go:embed reports.yaml
var defaultDataset []byte

type record struct {
	ID            string  `yaml:"id"`
	ImageURL      string  `yaml:"image_url"`
	Address       string  `yaml:"address"`
	Lat           float64 `yaml:"lat"`
	Lng           float64 `yaml:"lng"`
	Severity      int     `yaml:"severity"`
	SeverityLabel string  `yaml:"severity_label"`
	EstimatedCost int     `yaml:"estimated_cost"`
	Diameter      string  `yaml:"diameter"`
	Depth         string  `yaml:"depth"`
	Status        string  `yaml:"status"`
	Weather       string  `yaml:"weather"`
	TrafficLevel  string  `yaml:"traffic_level"`
	CreatedAt     string  `yaml:"created_at"`
	CreatedAgo    string  `yaml:"created_ago"`
}

type document struct {
	Reports []record `yaml:"reports"`
}

// Default возвращает встроенный набор, относительные даты считаются от now
func Default(now time.Time) ([]models.PotholeReport, error) {
	return Parse(defaultDataset, now)
}

// LoadFile читает набор из файла; пустой путь означает встроенный набор
func LoadFile(path string, now time.Time) ([]models.PotholeReport, error) {
	if path == "" {
		return Default(now)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures file: %w", err)
	}
	return Parse(data, now)
}

// Parse разбирает YAML и проверяет согласованность каждого отчета с таблицей уровней
func Parse(data []byte, now time.Time) ([]models.PotholeReport, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}

	reports := make([]models.PotholeReport, 0, len(doc.Reports))
	seen := make(map[string]struct{}, len(doc.Reports))
	for i, rec := range doc.Reports {
		report, err := rec.toModel(now)
		if err != nil {
			return nil, fmt.Errorf("fixture #%d: %w", i, err)
		}
		if _, dup := seen[report.ID]; dup {
			return nil, fmt.Errorf("fixture #%d: duplicate id %s", i, report.ID)
		}
		seen[report.ID] = struct{}{}
		reports = append(reports, report)
	}
	return reports, nil
}

func (rec record) toModel(now time.Time) (models.PotholeReport, error) {
	level, ok := severity.Lookup(models.Severity(rec.Severity))
	if !ok {
		return models.PotholeReport{}, fmt.Errorf("severity %d out of range", rec.Severity)
	}
	if rec.SeverityLabel != "" && rec.SeverityLabel != level.Label {
		return models.PotholeReport{}, fmt.Errorf("label %q does not match severity %d", rec.SeverityLabel, rec.Severity)
	}

	dims := level.Dimensions
	if rec.Diameter != "" || rec.Depth != "" {
		if rec.Diameter != dims.Diameter || rec.Depth != dims.Depth {
			return models.PotholeReport{}, fmt.Errorf("dimensions do not match severity %d", rec.Severity)
		}
	}

	cost := rec.EstimatedCost
	if cost == 0 {
		cost = level.BaseCost
	}
	if !level.CostInRange(cost) {
		return models.PotholeReport{}, fmt.Errorf("estimated cost %d outside [%d, %d) for severity %d",
			cost, level.BaseCost, level.BaseCost+severity.CostJitter, rec.Severity)
	}

	status := models.StatusPending
	if rec.Status != "" {
		status = models.ReportStatus(rec.Status)
		if !status.Valid() {
			return models.PotholeReport{}, fmt.Errorf("unknown status %q", rec.Status)
		}
	}

	traffic := models.TrafficLevel(rec.TrafficLevel)
	switch traffic {
	case "", models.TrafficLow, models.TrafficMedium, models.TrafficHigh:
	default:
		return models.PotholeReport{}, fmt.Errorf("unknown traffic level %q", rec.TrafficLevel)
	}

	createdAt, err := rec.createdAt(now)
	if err != nil {
		return models.PotholeReport{}, err
	}

	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}

	return models.PotholeReport{
		ID:            id,
		ImageURL:      rec.ImageURL,
		Location:      models.Location{Address: rec.Address, Lat: rec.Lat, Lng: rec.Lng},
		Severity:      level.Severity,
		SeverityLabel: level.Label,
		EstimatedCost: cost,
		Dimensions:    dims,
		CreatedAt:     createdAt,
		Status:        status,
		Weather:       rec.Weather,
		TrafficLevel:  traffic,
	}, nil
}

func (rec record) createdAt(now time.Time) (time.Time, error) {
	switch {
	case rec.CreatedAt != "" && rec.CreatedAgo != "":
		return time.Time{}, errors.New("created_at and created_ago are mutually exclusive")
	case rec.CreatedAt != "":
		t, err := time.Parse(time.RFC3339, rec.CreatedAt)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid created_at: %w", err)
		}
		return t.UTC(), nil
	case rec.CreatedAgo != "":
		d, err := time.ParseDuration(rec.CreatedAgo)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid created_ago: %w", err)
		}
		return now.Add(-d).UTC(), nil
	}
	return now.UTC(), nil
}
