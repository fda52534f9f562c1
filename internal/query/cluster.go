package query

import (
	"fmt"
	"sort"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/shenikar/pothole_reporting_system/internal/models"
)

const (
	expectedCells = 160
	minLevel      = 6
	maxLevel      = 16
)

type clusterUnit struct {
	count       int
	lat, lng    float64
	maxSeverity models.Severity
}

// ValidateViewport проверяет границы прямоугольника карты
func ValidateViewport(vp models.Viewport) error {
	if vp.LatMin < -90 || vp.LatMax > 90 || vp.LngMin < -180 || vp.LngMax > 180 {
		return fmt.Errorf("%w: viewport out of range", models.ErrInvalidInput)
	}
	if vp.LatMin > vp.LatMax || vp.LngMin > vp.LngMax {
		return fmt.Errorf("%w: viewport min exceeds max", models.ErrInvalidInput)
	}
	return nil
}

// Cluster группирует отчеты внутри viewport по ячейкам S2.
// Уровень ячеек подбирается так, чтобы viewport покрывало около expectedCells ячеек.
func Cluster(reports []models.PotholeReport, vp models.Viewport) ([]models.MapCluster, error) {
	if err := ValidateViewport(vp); err != nil {
		return nil, err
	}

	level := cellLevel(vp)
	units := make(map[s2.CellID]*clusterUnit)
	for _, r := range reports {
		if !inViewport(vp, r.Location) {
			continue
		}
		cell := s2.CellIDFromLatLng(s2.LatLngFromDegrees(r.Location.Lat, r.Location.Lng)).Parent(level)
		u, ok := units[cell]
		if !ok {
			u = &clusterUnit{}
			units[cell] = u
		}
		u.count++
		u.lat, u.lng = r.Location.Lat, r.Location.Lng
		if r.Severity > u.maxSeverity {
			u.maxSeverity = r.Severity
		}
	}

	clusters := make([]models.MapCluster, 0, len(units))
	for cell, u := range units {
		lat, lng := u.lat, u.lng
		// одиночный отчет остается в своей точке
		if u.count > 1 {
			ll := cell.LatLng()
			lat, lng = ll.Lat.Degrees(), ll.Lng.Degrees()
		}
		clusters = append(clusters, models.MapCluster{
			Lat:         lat,
			Lng:         lng,
			Count:       u.count,
			MaxSeverity: u.maxSeverity,
		})
	}

	sort.Slice(clusters, func(i, j int) bool {
		if clusters[i].Count != clusters[j].Count {
			return clusters[i].Count > clusters[j].Count
		}
		if clusters[i].Lat != clusters[j].Lat {
			return clusters[i].Lat < clusters[j].Lat
		}
		return clusters[i].Lng < clusters[j].Lng
	})
	return clusters, nil
}

func cellLevel(vp models.Viewport) int {
	minLL := s2.LatLngFromDegrees(vp.LatMin, vp.LngMin)
	maxLL := s2.LatLngFromDegrees(vp.LatMax, vp.LngMax)

	rect := s2.Rect{
		Lat: r1.Interval{Lo: minLL.Lat.Radians(), Hi: maxLL.Lat.Radians()},
		Lng: s1.Interval{Lo: minLL.Lng.Radians(), Hi: maxLL.Lng.Radians()},
	}
	area := rect.Area()

	center := s2.CellIDFromLatLng(s2.LatLngFromDegrees((vp.LatMin+vp.LatMax)/2, (vp.LngMin+vp.LngMax)/2))
	for lv := maxLevel; lv >= minLevel; lv-- {
		c := s2.CellFromCellID(center.Parent(lv))
		if area/c.ApproxArea() < expectedCells {
			return lv
		}
	}
	return minLevel
}

func inViewport(vp models.Viewport, loc models.Location) bool {
	return loc.Lat >= vp.LatMin && loc.Lat <= vp.LatMax && loc.Lng >= vp.LngMin && loc.Lng <= vp.LngMax
}
