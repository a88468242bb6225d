package sync

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFixtureFile(t *testing.T) {
	f, err := LoadFixtureFile("testdata/fixtures.json")
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2", "a3"}, f.IDs())

	var progress [][2]int
	traces, err := f.FetchTraces(context.Background(), nil, func(completed, total int) {
		progress = append(progress, [2]int{completed, total})
	})
	require.NoError(t, err)
	require.Len(t, traces, 3)

	// null в latlngs пропускается
	assert.Len(t, traces[0].Points, 5)
	assert.Equal(t, "Ride", traces[0].SportType)
	assert.Equal(t, 2024, traces[0].StartDate.Year())
	require.NotNil(t, traces[0].Bounds)
	assert.InDelta(t, 45.004, traces[0].Bounds.MaxLat, 1e-9)

	assert.Len(t, traces[1].Points, 2)
	require.NotNil(t, traces[2].ElevationGain)
	assert.InDelta(t, 12.0, *traces[2].ElevationGain, 1e-9)

	assert.Equal(t, [][2]int{{1, 3}, {2, 3}, {3, 3}}, progress)
}

func TestFixtureFetcher_SelectedIDs(t *testing.T) {
	f, err := LoadFixtureFile("testdata/fixtures.json")
	require.NoError(t, err)

	traces, err := f.FetchTraces(context.Background(), []string{"a3", "missing"}, nil)
	require.NoError(t, err)
	require.Len(t, traces, 2)
	assert.Equal(t, "a3", traces[0].ID)
	assert.Equal(t, "missing", traces[1].ID)
	assert.Empty(t, traces[1].Points)
}

func TestFixtureFetcher_Cancelled(t *testing.T) {
	f, err := LoadFixtureFile("testdata/fixtures.json")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f.FetchTraces(ctx, nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewFixtureFetcher_Invalid(t *testing.T) {
	tests := []struct {
		name string
		path string
		data string
	}{
		{name: "truncated file", path: "testdata/broken.json"},
		{name: "duplicate id", path: "testdata/duplicate.json"},
		{name: "missing id", data: `{"activities":[{"latlngs":[[1,2]]}]}`},
		{name: "not an object", data: `[1,2,3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.path != "" {
				_, err = LoadFixtureFile(tt.path)
			} else {
				_, err = NewFixtureFetcher(strings.NewReader(tt.data))
			}
			assert.ErrorIs(t, err, ErrInvalidFixture)
		})
	}
}

func TestLoadFixtureFile_Missing(t *testing.T) {
	_, err := LoadFixtureFile("testdata/nope.json")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidFixture)
}

func TestNewFixtureFetcher_DropsInvalidCoordinates(t *testing.T) {
	f, err := NewFixtureFetcher(strings.NewReader(
		`{"activities":[{"id":"x","latlngs":[[10,10],[95,10],[10],[11,11]]}]}`))
	require.NoError(t, err)

	traces, err := f.FetchTraces(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, traces, 1)
	assert.Len(t, traces[0].Points, 2)
}

func TestDemoFixtureFetcher(t *testing.T) {
	f, err := DemoFixtureFetcher()
	require.NoError(t, err)
	assert.Equal(t, []string{"demo-1", "demo-2", "demo-3", "demo-4"}, f.IDs())

	traces, err := f.FetchTraces(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, traces, 4)
	assert.Len(t, traces[0].Points, 121)
	assert.Len(t, traces[1].Points, 121)
	assert.Len(t, traces[3].Points, 2)
}
