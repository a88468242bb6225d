package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/routesync/internal/models"
)

func TestNewFlatBuffer(t *testing.T) {
	traces := []models.ActivityTrace{
		{ID: "a", SportType: "Ride", Points: models.Polyline{{Lat: 1, Lng: 2}, {Lat: 3, Lng: 4}}},
		{ID: "empty", SportType: "Swim"},
		{ID: "b", SportType: "Run", Points: models.Polyline{{Lat: 5, Lng: 6}, {Lat: 7, Lng: 8}, {Lat: 9, Lng: 10}}},
	}

	buf := NewFlatBuffer(traces)

	require.Equal(t, 2, buf.Len())
	assert.Equal(t, []string{"a", "b"}, buf.IDs)
	assert.Equal(t, []string{"Ride", "Run"}, buf.SportTypes)
	assert.Equal(t, []int{0, 2}, buf.Offsets)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, buf.Coords)

	assert.Equal(t, 2, buf.PointCount(0))
	assert.Equal(t, 3, buf.PointCount(1))
	assert.Equal(t, traces[2].Points, buf.Points(1))
}

func TestNewFlatBuffer_Empty(t *testing.T) {
	buf := NewFlatBuffer(nil)
	assert.Zero(t, buf.Len())
	assert.Empty(t, buf.Coords)
	assert.Empty(t, buf.Offsets)
}

func TestFlatBuffer_OffsetsStrictlyIncreasing(t *testing.T) {
	var traces []models.ActivityTrace
	for i := 1; i <= 5; i++ {
		points := make(models.Polyline, i)
		traces = append(traces, models.ActivityTrace{ID: string(rune('a' + i)), Points: points})
	}

	buf := NewFlatBuffer(traces)
	total := 0
	for i := range buf.Offsets {
		if i > 0 {
			assert.Greater(t, buf.Offsets[i], buf.Offsets[i-1])
		}
		total += buf.PointCount(i)
	}
	assert.Equal(t, len(buf.Coords)/2, total)
}
