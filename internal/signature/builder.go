// Package signature строит компактные сигнатуры маршрутов из полных GPS треков.
package signature

import (
	"errors"

	"github.com/iudanet/routesync/internal/geo"
	"github.com/iudanet/routesync/internal/models"
)

// ErrInsufficientPoints is returned when a trace has fewer than two valid points.
var ErrInsufficientPoints = errors.New("trace has fewer than 2 valid points")

// Config параметры построения сигнатуры.
type Config struct {
	SimplifyToleranceMeters float64 `yaml:"simplify_tolerance_meters"`
	RegionCellMeters        float64 `yaml:"region_cell_meters"`
	LoopThresholdMeters     float64 `yaml:"loop_threshold_meters"`
	MinPoints               int     `yaml:"min_points"`
	MaxPoints               int     `yaml:"max_points"`
}

// DefaultConfig returns the reference signature parameters.
func DefaultConfig() Config {
	return Config{
		SimplifyToleranceMeters: 10,
		RegionCellMeters:        500,
		LoopThresholdMeters:     100,
		MinPoints:               50,
		MaxPoints:               100,
	}
}

// maxRefinements сколько раз можно уменьшить допуск, добирая точки до MinPoints
const maxRefinements = 8

// Builder turns raw traces into route signatures.
type Builder struct {
	cfg Config
}

// NewBuilder creates a signature builder.
func NewBuilder(cfg Config) *Builder {
	return &Builder{cfg: cfg}
}

// Build creates the signature of one activity. Points with non-finite or out of
// range coordinates are ignored; ErrInsufficientPoints is returned when fewer than
// two remain.
func (b *Builder) Build(activityID string, raw models.Polyline, elevationGain *float64) (*models.RouteSignature, error) {
	valid := make(models.Polyline, 0, len(raw))
	for _, p := range raw {
		if geo.IsValid(p) {
			valid = append(valid, p)
		}
	}
	if len(valid) < 2 {
		return nil, ErrInsufficientPoints
	}

	bounds, _ := geo.ComputeBounds(valid)
	first := valid[0]
	last := valid[len(valid)-1]

	sig := &models.RouteSignature{
		ActivityID:      activityID,
		Points:          b.simplify(valid),
		Distance:        geo.PolylineLength(valid),
		Bounds:          bounds,
		Center:          bounds.Center(),
		StartRegionHash: RegionHash(first, b.cfg.RegionCellMeters),
		EndRegionHash:   RegionHash(last, b.cfg.RegionCellMeters),
		IsLoop:          geo.Haversine(first, last) < b.cfg.LoopThresholdMeters,
		TraceDigest:     Digest(raw),
	}
	if elevationGain != nil {
		gain := *elevationGain
		sig.ElevationGain = &gain
	}

	return sig, nil
}

// simplify упрощает трек до MinPoints..MaxPoints точек
func (b *Builder) simplify(points models.Polyline) models.Polyline {
	tolerance := b.cfg.SimplifyToleranceMeters
	out := geo.Simplify(points, tolerance)

	want := b.cfg.MinPoints
	if want > len(points) {
		want = len(points)
	}
	for i := 0; i < maxRefinements && len(out) < want && tolerance > 0; i++ {
		tolerance /= 2
		out = geo.Simplify(points, tolerance)
	}

	if b.cfg.MaxPoints >= 2 && len(out) > b.cfg.MaxPoints {
		out = Downsample(out, b.cfg.MaxPoints)
	}

	// не отдаем наружу срез, разделяющий память с входными данными
	result := make(models.Polyline, len(out))
	copy(result, out)
	return result
}

// Downsample равномерно выбирает n точек, сохраняя первую и последнюю.
// Трек из n точек или меньше возвращается как есть.
func Downsample(points models.Polyline, n int) models.Polyline {
	if n < 2 || len(points) <= n {
		return points
	}
	out := make(models.Polyline, n)
	last := len(points) - 1
	for i := 0; i < n; i++ {
		out[i] = points[i*last/(n-1)]
	}
	return out
}
