package geo

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/routesync/internal/models"
)

func pt(lat, lng float64) models.RoutePoint {
	return models.RoutePoint{Lat: lat, Lng: lng}
}

// noisyTrack строит трек вдоль широты с детерминированным шумом
func noisyTrack(n int, seed int64) models.Polyline {
	rnd := rand.New(rand.NewSource(seed))
	track := make(models.Polyline, n)
	for i := range track {
		track[i] = pt(51.5+rnd.Float64()*0.0005, -0.12+float64(i)*0.0001)
	}
	return track
}

func TestHaversine_ZeroForIdenticalPoints(t *testing.T) {
	points := []models.RoutePoint{
		pt(0, 0),
		pt(51.5074, -0.1278),
		pt(-33.8688, 151.2093),
		pt(89.9999, 179.9999),
		pt(-90, -180),
	}
	for _, p := range points {
		assert.Equal(t, 0.0, Haversine(p, p), "point %v", p)
	}
}

func TestHaversine_Symmetric(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		a := pt(rnd.Float64()*180-90, rnd.Float64()*360-180)
		b := pt(rnd.Float64()*180-90, rnd.Float64()*360-180)

		ab := Haversine(a, b)
		ba := Haversine(b, a)
		assert.InEpsilon(t, ab, ba, 1e-6, "a=%v b=%v", a, b)
	}
}

func TestHaversine_OneDegreeAtEquator(t *testing.T) {
	d := Haversine(pt(0, 0), pt(1, 0))
	assert.GreaterOrEqual(t, d, 111000.0)
	assert.LessOrEqual(t, d, 112000.0)
}

func TestHaversine_LondonParis(t *testing.T) {
	d := Haversine(pt(51.5074, -0.1278), pt(48.8566, 2.3522))
	// ~343 км
	assert.InDelta(t, 343500, d, 2000)
}

func TestHaversine_NaNPropagates(t *testing.T) {
	assert.True(t, math.IsNaN(Haversine(pt(math.NaN(), 0), pt(1, 1))))
	assert.True(t, math.IsNaN(Haversine(pt(1, 1), pt(0, math.NaN()))))
}

func TestPolylineLength(t *testing.T) {
	assert.Equal(t, 0.0, PolylineLength(nil))
	assert.Equal(t, 0.0, PolylineLength(models.Polyline{pt(1, 1)}))

	line := models.Polyline{pt(0, 0), pt(1, 0), pt(2, 0)}
	assert.InDelta(t, 2*Haversine(pt(0, 0), pt(1, 0)), PolylineLength(line), 1e-6)
}

func TestComputeBounds(t *testing.T) {
	_, ok := ComputeBounds(nil)
	assert.False(t, ok)

	b, ok := ComputeBounds(models.Polyline{pt(1, 5), pt(-2, 3), pt(4, -1)})
	require.True(t, ok)
	assert.Equal(t, models.Bounds{MinLat: -2, MaxLat: 4, MinLng: -1, MaxLng: 5}, b)
	assert.Equal(t, pt(1, 2), b.Center())
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name string
		p    models.RoutePoint
		want bool
	}{
		{name: "origin", p: pt(0, 0), want: true},
		{name: "corner", p: pt(-90, 180), want: true},
		{name: "lat out of range", p: pt(90.1, 0), want: false},
		{name: "lng out of range", p: pt(0, -180.5), want: false},
		{name: "nan", p: pt(math.NaN(), 0), want: false},
		{name: "inf", p: pt(0, math.Inf(1)), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.p))
		})
	}
}

func TestSimplify_ShortInputsUnchanged(t *testing.T) {
	single := models.Polyline{pt(1, 1)}
	out := Simplify(single, 10)
	assert.Equal(t, single, out)
	assert.Same(t, &single[0], &out[0])

	pair := models.Polyline{pt(1, 1), pt(2, 2)}
	out = Simplify(pair, 10)
	assert.Equal(t, pair, out)
	assert.Same(t, &pair[0], &out[0])

	assert.Empty(t, Simplify(nil, 10))
}

func TestSimplify_StraightLine(t *testing.T) {
	lines := []models.Polyline{
		{pt(0, 0), pt(0, 1), pt(0, 2)},       // экватор
		{pt(10, 20), pt(11, 20), pt(12, 20)}, // меридиан
		{pt(60, 5), pt(60.5, 5), pt(61, 5)},  // высокая широта
	}
	for _, line := range lines {
		out := Simplify(line, 10)
		require.Len(t, out, 2)
		assert.Equal(t, line[0], out[0])
		assert.Equal(t, line[2], out[1])
	}
}

func TestSimplify_KeepsEndpoints(t *testing.T) {
	track := noisyTrack(500, 7)
	for _, tol := range []float64{0, 1, 10, 100, 10000} {
		out := Simplify(track, tol)
		require.GreaterOrEqual(t, len(out), 2)
		assert.Equal(t, track[0], out[0])
		assert.Equal(t, track[len(track)-1], out[len(out)-1])
	}
}

func TestSimplify_ZeroToleranceKeepsDeviatingPoints(t *testing.T) {
	// средняя точка отклоняется от хорды на ~1 м
	line := models.Polyline{pt(0, 0), pt(0.00001, 0.001), pt(0, 0.002)}
	out := Simplify(line, 0)
	assert.Len(t, out, 3)

	out = Simplify(line, 5)
	assert.Len(t, out, 2)
}

func TestSimplify_ToleranceIsMonotonic(t *testing.T) {
	track := noisyTrack(800, 11)
	prev := len(track) + 1
	for _, tol := range []float64{0, 0.5, 1, 2, 5, 10, 20, 50, 100, 1000} {
		n := len(Simplify(track, tol))
		assert.LessOrEqual(t, n, prev, "tolerance %v", tol)
		prev = n
	}
}

func TestSimplify_LargeInput(t *testing.T) {
	// зигзаг: каждая точка значима, глубина разбиения максимальна
	track := make(models.Polyline, 3000)
	for i := range track {
		off := 0.0
		if i%2 == 1 {
			off = 0.001
		}
		track[i] = pt(45+off, 7+float64(i)*0.0001)
	}

	out := Simplify(track, 1)
	assert.Equal(t, track[0], out[0])
	assert.Equal(t, track[len(track)-1], out[len(out)-1])
	assert.Greater(t, len(out), 1000)
}

func TestOverlap_Identical(t *testing.T) {
	track := noisyTrack(100, 3)
	assert.Equal(t, 1.0, Overlap(track, track, DefaultOverlapThreshold))
}

func TestOverlap_Empty(t *testing.T) {
	track := noisyTrack(10, 3)
	assert.Equal(t, 0.0, Overlap(nil, track, DefaultOverlapThreshold))
	assert.Equal(t, 0.0, Overlap(track, nil, DefaultOverlapThreshold))
	assert.Equal(t, 0.0, Overlap(nil, nil, DefaultOverlapThreshold))
}

func TestOverlap_Disjoint(t *testing.T) {
	a := models.Polyline{pt(0, 0), pt(0, 0.001)}
	b := models.Polyline{pt(1, 1), pt(1, 1.001)}
	assert.Equal(t, 0.0, Overlap(a, b, DefaultOverlapThreshold))
	assert.Equal(t, 0.0, Overlap(b, a, DefaultOverlapThreshold))
}

func TestOverlap_Asymmetric(t *testing.T) {
	long := make(models.Polyline, 100)
	for i := range long {
		long[i] = pt(46, 8+float64(i)*0.0002)
	}
	short := long[10:30]

	shortInLong := Overlap(short, long, DefaultOverlapThreshold)
	longInShort := Overlap(long, short, DefaultOverlapThreshold)

	assert.Equal(t, 1.0, shortInLong)
	assert.Less(t, longInShort, 1.0)
	assert.GreaterOrEqual(t, shortInLong, longInShort)
}

func TestOverlap_ThresholdIsMonotonic(t *testing.T) {
	a := models.Polyline{pt(0, 0)}
	b := models.Polyline{pt(MetersToDegrees(55), 0)}

	assert.InDelta(t, 55.0, Haversine(a[0], b[0]), 1e-6)
	assert.Equal(t, 0.0, Overlap(a, b, 50))
	assert.Equal(t, 1.0, Overlap(a, b, 100))

	x := noisyTrack(60, 1)
	y := noisyTrack(60, 2)
	prev := 0.0
	for _, th := range []float64{0, 5, 10, 20, 50, 100, 500} {
		s := Overlap(x, y, th)
		assert.GreaterOrEqual(t, s, prev, "threshold %v", th)
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
		prev = s
	}
}
