package models

import "time"

// RoutePoint представляет одну GPS точку в градусах.
type RoutePoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Polyline упорядоченная последовательность точек в порядке прохождения маршрута.
type Polyline []RoutePoint

// Bounds bounding box маршрута в градусах.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`
}

// Center returns the midpoint of the bounds (not the centroid of the points).
func (b Bounds) Center() RoutePoint {
	return RoutePoint{
		Lat: (b.MinLat + b.MaxLat) / 2,
		Lng: (b.MinLng + b.MaxLng) / 2,
	}
}

// Contains reports whether p lies inside the bounds (edges included).
func (b Bounds) Contains(p RoutePoint) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat && p.Lng >= b.MinLng && p.Lng <= b.MaxLng
}

// RouteSignature компактное представление трека для сравнения маршрутов.
// Создается один раз из полного трека активности и далее не изменяется.
type RouteSignature struct {
	ElevationGain   *float64   `json:"elevation_gain,omitempty"` // ElevationGain набор высоты в метрах (если известен)
	ActivityID      string     `json:"activity_id"`
	StartRegionHash string     `json:"start_region_hash"` // StartRegionHash ячейка грубой сетки для старта
	EndRegionHash   string     `json:"end_region_hash"`   // EndRegionHash ячейка грубой сетки для финиша
	TraceDigest     string     `json:"trace_digest"`      // TraceDigest хеш исходного трека, нужен для пересчета при изменении
	Points          Polyline   `json:"points"`            // Points упрощенный трек (~50-100 точек)
	Bounds          Bounds     `json:"bounds"`
	Center          RoutePoint `json:"center"`
	Distance        float64    `json:"distance"` // Distance длина исходного трека в метрах
	IsLoop          bool       `json:"is_loop"`
}

// ActivityTrace is the per-activity result of a fetch strategy.
type ActivityTrace struct {
	StartDate     time.Time `json:"start_date"`
	Bounds        *Bounds   `json:"bounds,omitempty"`
	ElevationGain *float64  `json:"elevation_gain,omitempty"`
	ID            string    `json:"id"`
	SportType     string    `json:"sport_type"`
	Points        Polyline  `json:"points"`
}
