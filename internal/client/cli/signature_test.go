package cli

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/routesync/internal/client/storage"
	"github.com/iudanet/routesync/internal/engine"
	"github.com/iudanet/routesync/internal/engine/sqlite"
	"github.com/iudanet/routesync/internal/models"
)

func testSignature() *models.RouteSignature {
	gain := 42.0
	return &models.RouteSignature{
		ActivityID:      "a1",
		Points:          models.Polyline{{Lat: 45, Lng: 7}, {Lat: 45.01, Lng: 7}, {Lat: 45, Lng: 7.0001}},
		Distance:        2300,
		Bounds:          models.Bounds{MinLat: 45, MaxLat: 45.01, MinLng: 7, MaxLng: 7.0001},
		Center:          models.RoutePoint{Lat: 45.005, Lng: 7.00005},
		StartRegionHash: "10006:1400",
		EndRegionHash:   "10006:1400",
		IsLoop:          true,
		ElevationGain:   &gain,
		TraceDigest:     "abc123",
	}
}

func signatureStore(sig *models.RouteSignature, err error) *storage.SyncStorageMock {
	return &storage.SyncStorageMock{
		GetSignatureFunc: func(ctx context.Context, activityID string) (*models.RouteSignature, error) {
			return sig, err
		},
	}
}

func TestCli_runSignature(t *testing.T) {
	mockIO, out := newTestIO()
	store := signatureStore(testSignature(), nil)

	require.NoError(t, New(Deps{IO: mockIO, Store: store}).runSignature(context.Background(), "a1", false))

	calls := store.GetSignatureCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "a1", calls[0].ActivityID)

	output := out.String()
	assert.Contains(t, output, "=== Signature a1 ===")
	assert.Contains(t, output, "Points:      3")
	assert.Contains(t, output, "Distance:    2.3 km")
	assert.Contains(t, output, "Loop:        true")
	assert.Contains(t, output, "Elevation:   42 m")
	assert.Contains(t, output, "Digest:      abc123")
}

func TestCli_runSignature_JSON(t *testing.T) {
	mockIO, out := newTestIO()
	store := signatureStore(testSignature(), nil)

	require.NoError(t, New(Deps{IO: mockIO, Store: store}).runSignature(context.Background(), "a1", true))

	var got models.RouteSignature
	require.NoError(t, json.Unmarshal([]byte(out.String()), &got))
	assert.Equal(t, *testSignature(), got)
}

func TestCli_runSignature_Errors(t *testing.T) {
	tests := []struct {
		err     error
		name    string
		id      string
		wantMsg string
	}{
		{name: "invalid id", id: "../etc", wantMsg: "invalid activity id"},
		{name: "not cached", id: "a1", err: storage.ErrSignatureNotFound, wantMsg: "Run 'routesync sync' first"},
		{name: "store failure", id: "a1", err: errors.New("boom"), wantMsg: "failed to get signature"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockIO, _ := newTestIO()
			err := New(Deps{IO: mockIO, Store: signatureStore(nil, tt.err)}).runSignature(context.Background(), tt.id, false)
			assert.ErrorContains(t, err, tt.wantMsg)
		})
	}
}

// groupListerFunc адаптер функции к GroupLister
type groupListerFunc func(ctx context.Context) ([]sqlite.RouteGroup, error)

func (f groupListerFunc) Groups(ctx context.Context) ([]sqlite.RouteGroup, error) {
	return f(ctx)
}

func TestCli_runGroups(t *testing.T) {
	mockIO, out := newTestIO()
	groups := groupListerFunc(func(context.Context) ([]sqlite.RouteGroup, error) {
		return []sqlite.RouteGroup{{ID: "g1", ActivityIDs: []string{"a1", "a2"}}}, nil
	})

	require.NoError(t, New(Deps{IO: mockIO, Groups: groups}).runGroups(context.Background()))
	assert.Contains(t, out.String(), "g1  2 activities: a1, a2")
}

func TestCli_runGroups_Empty(t *testing.T) {
	mockIO, out := newTestIO()
	groups := groupListerFunc(func(context.Context) ([]sqlite.RouteGroup, error) {
		return nil, nil
	})

	require.NoError(t, New(Deps{IO: mockIO, Groups: groups}).runGroups(context.Background()))
	assert.Contains(t, out.String(), "No repeated routes found yet.")
}

func TestCli_runGroups_NoEngine(t *testing.T) {
	mockIO, _ := newTestIO()
	assert.ErrorIs(t, New(Deps{IO: mockIO}).runGroups(context.Background()), engine.ErrEngineUnavailable)
}
