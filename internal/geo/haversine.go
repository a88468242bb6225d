// Package geo содержит чистые геометрические функции над GPS треками.
package geo

import (
	"math"

	"github.com/iudanet/routesync/internal/models"
)

// EarthRadiusMeters средний радиус Земли.
const EarthRadiusMeters = 6371000.0

// metersPerDegree длина одного градуса дуги большого круга.
const metersPerDegree = EarthRadiusMeters * math.Pi / 180

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Haversine returns the great-circle distance between a and b in meters.
// NaN coordinates propagate to the result.
func Haversine(a, b models.RoutePoint) float64 {
	return EarthRadiusMeters * centralAngle(a, b)
}

// centralAngle угловое расстояние между точками в радианах.
func centralAngle(a, b models.RoutePoint) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	// ошибки округления могут дать h чуть больше 1
	if h > 1 {
		h = 1
	}

	return 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// bearing начальный азимут из a в b в радианах.
func bearing(a, b models.RoutePoint) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	y := math.Sin(dLng) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLng)
	return math.Atan2(y, x)
}

// PolylineLength returns the cumulative haversine distance along consecutive points.
func PolylineLength(points models.Polyline) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += Haversine(points[i-1], points[i])
	}
	return total
}

// MetersToDegrees converts a distance along a meridian to degrees of latitude.
func MetersToDegrees(meters float64) float64 {
	return meters / metersPerDegree
}

// IsValid reports whether p has finite coordinates within the WGS84 ranges.
func IsValid(p models.RoutePoint) bool {
	return !math.IsNaN(p.Lat) && !math.IsInf(p.Lat, 0) &&
		!math.IsNaN(p.Lng) && !math.IsInf(p.Lng, 0) &&
		p.Lat >= -90 && p.Lat <= 90 &&
		p.Lng >= -180 && p.Lng <= 180
}

// ComputeBounds returns the coordinate-wise min/max of points.
// The second value is false for an empty polyline.
func ComputeBounds(points models.Polyline) (models.Bounds, bool) {
	if len(points) == 0 {
		return models.Bounds{}, false
	}

	b := models.Bounds{
		MinLat: points[0].Lat,
		MaxLat: points[0].Lat,
		MinLng: points[0].Lng,
		MaxLng: points[0].Lng,
	}
	for _, p := range points[1:] {
		b.MinLat = math.Min(b.MinLat, p.Lat)
		b.MaxLat = math.Max(b.MaxLat, p.Lat)
		b.MinLng = math.Min(b.MinLng, p.Lng)
		b.MaxLng = math.Max(b.MaxLng, p.Lng)
	}

	return b, true
}
