package geo

import (
	"math"

	"github.com/iudanet/routesync/internal/models"
)

// DefaultOverlapThreshold is the point match distance used when callers have no
// better value. It is unrelated to the route grouping threshold.
const DefaultOverlapThreshold = 50.0

// Overlap returns the fraction of points in a that have at least one point of b
// within thresholdMeters. The score is a containment measure and is not
// symmetric: a short route fully inside a long one scores 1 against it, while
// the long route scores only the share of its points near the short one.
// Empty inputs score 0.
func Overlap(a, b models.Polyline, thresholdMeters float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	// разница широт дает нижнюю оценку расстояния, поэтому фильтр не меняет результат
	latWindow := MetersToDegrees(thresholdMeters) * (1 + 1e-9)

	matched := 0
	for _, p := range a {
		for _, q := range b {
			if math.Abs(p.Lat-q.Lat) > latWindow {
				continue
			}
			if Haversine(p, q) <= thresholdMeters {
				matched++
				break
			}
		}
	}

	return float64(matched) / float64(len(a))
}
