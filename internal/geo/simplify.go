package geo

import (
	"math"

	"github.com/iudanet/routesync/internal/models"
)

// Simplify reduces points with the Douglas-Peucker algorithm. The deviation of a
// point is its cross-track distance in meters from the great circle through the
// current chord endpoints, so the tolerance means the same thing at every latitude.
//
// Inputs with two points or fewer are returned as is. The first and last points
// are always kept. A point is dropped only when its deviation is <= tolerance, so
// with a zero tolerance only exactly collinear points disappear.
func Simplify(points models.Polyline, toleranceMeters float64) models.Polyline {
	if len(points) <= 2 {
		return points
	}

	keep := make([]bool, len(points))
	keep[0] = true
	keep[len(points)-1] = true

	// явный стек вместо рекурсии: треки бывают на десятки тысяч точек
	type span struct{ first, last int }
	stack := []span{{0, len(points) - 1}}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if s.last-s.first < 2 {
			continue
		}

		maxDev := 0.0
		index := -1
		for i := s.first + 1; i < s.last; i++ {
			d := segmentDistance(points[i], points[s.first], points[s.last])
			if d > maxDev {
				maxDev = d
				index = i
			}
		}

		if index < 0 || maxDev <= toleranceMeters {
			continue
		}

		keep[index] = true
		stack = append(stack, span{s.first, index}, span{index, s.last})
	}

	out := make(models.Polyline, 0, len(points))
	for i, p := range points {
		if keep[i] {
			out = append(out, p)
		}
	}
	return out
}

// segmentDistance расстояние от p до дуги большого круга a-b в метрах.
// Если проекция p падает вне дуги, берется расстояние до ближайшего конца.
func segmentDistance(p, a, b models.RoutePoint) float64 {
	d12 := centralAngle(a, b)
	d13 := centralAngle(a, p)
	if d12 == 0 {
		return EarthRadiusMeters * d13
	}

	delta := bearing(a, p) - bearing(a, b)
	xt := math.Asin(math.Sin(d13) * math.Sin(delta))

	// точка "позади" начала хорды
	if math.Cos(delta) < 0 {
		return EarthRadiusMeters * d13
	}

	cosXt := math.Cos(xt)
	along := 0.0
	if cosXt != 0 {
		c := math.Cos(d13) / cosXt
		if c > 1 {
			c = 1
		} else if c < -1 {
			c = -1
		}
		along = math.Acos(c)
	}
	if along > d12 {
		return Haversine(p, b)
	}

	return EarthRadiusMeters * math.Abs(xt)
}
