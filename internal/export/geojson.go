// Package export выгружает отчеты для внешних ГИС.
package export

import (
	"fmt"
	"time"

	geojson "github.com/paulmach/go.geojson"
	"github.com/shenikar/pothole_reporting_system/internal/models"
)

// FeatureCollection строит GeoJSON-коллекцию точек в порядке входных отчетов
func FeatureCollection(reports []models.PotholeReport) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, r := range reports {
		// GeoJSON хранит координаты в порядке [lng, lat]
		f := geojson.NewPointFeature([]float64{r.Location.Lng, r.Location.Lat})
		f.ID = r.ID
		f.SetProperty("address", r.Location.Address)
		f.SetProperty("severity", int(r.Severity))
		f.SetProperty("severity_label", r.SeverityLabel)
		f.SetProperty("estimated_cost", r.EstimatedCost)
		f.SetProperty("diameter", r.Dimensions.Diameter)
		f.SetProperty("depth", r.Dimensions.Depth)
		f.SetProperty("status", string(r.Status))
		f.SetProperty("created_at", r.CreatedAt.UTC().Format(time.RFC3339))
		if r.Weather != "" {
			f.SetProperty("weather", r.Weather)
		}
		if r.TrafficLevel != "" {
			f.SetProperty("traffic_level", string(r.TrafficLevel))
		}
		fc.AddFeature(f)
	}
	return fc
}

// GeoJSON сериализует отчеты в FeatureCollection
func GeoJSON(reports []models.PotholeReport) ([]byte, error) {
	data, err := FeatureCollection(reports).MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal geojson: %w", err)
	}
	return data, nil
}
