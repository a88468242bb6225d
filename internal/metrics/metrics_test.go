package metrics

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(SyncCyclesTotal.WithLabelValues("complete"))
	SyncCyclesTotal.WithLabelValues("complete").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(SyncCyclesTotal.WithLabelValues("complete")))

	Generation.Set(7)
	assert.Equal(t, 7.0, testutil.ToFloat64(Generation))
}

func TestServer_Handler(t *testing.T) {
	RequestsTotal.WithLabelValues("map", "2xx").Inc()

	s := NewServer(":0", slog.New(slog.NewTextHandler(io.Discard, nil)))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "routesync_upstream_requests_total")
}
