package signature

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/iudanet/routesync/internal/geo"
	"github.com/iudanet/routesync/internal/models"
)

// RegionHash returns the id of the coarse grid cell containing p, formatted as
// "<latCell>_<lngCell>". Cells are cellMeters tall; their width in meters shrinks
// towards the poles, which is fine for a pre-filter.
func RegionHash(p models.RoutePoint, cellMeters float64) string {
	cellDeg := geo.MetersToDegrees(cellMeters)
	latCell := int64(math.Floor(p.Lat / cellDeg))
	lngCell := int64(math.Floor(p.Lng / cellDeg))
	return fmt.Sprintf("%d_%d", latCell, lngCell)
}

func parseRegion(hash string) (lat, lng int64, ok bool) {
	latStr, lngStr, found := strings.Cut(hash, "_")
	if !found {
		return 0, 0, false
	}
	lat, err := strconv.ParseInt(latStr, 10, 64)
	if err != nil {
		return 0, 0, false
	}
	lng, err = strconv.ParseInt(lngStr, 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lng, true
}

// RegionNeighbours reports whether two region hashes are the same cell or
// touch each other (8-neighbourhood). Malformed hashes never match.
func RegionNeighbours(a, b string) bool {
	latA, lngA, okA := parseRegion(a)
	latB, lngB, okB := parseRegion(b)
	if !okA || !okB {
		return false
	}
	return abs64(latA-latB) <= 1 && abs64(lngA-lngB) <= 1
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// Candidates is the O(1) pre-filter run before the expensive overlap check: two
// signatures are candidates when their start and end cells are neighbours, in
// either direction.
func Candidates(a, b *models.RouteSignature) bool {
	if a == nil || b == nil {
		return false
	}
	if RegionNeighbours(a.StartRegionHash, b.StartRegionHash) && RegionNeighbours(a.EndRegionHash, b.EndRegionHash) {
		return true
	}
	// тот же маршрут в обратную сторону
	return RegionNeighbours(a.StartRegionHash, b.EndRegionHash) && RegionNeighbours(a.EndRegionHash, b.StartRegionHash)
}
