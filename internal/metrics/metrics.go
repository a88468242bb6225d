// Package metrics содержит Prometheus коллекторы routesync.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RequestsTotal tracks upstream requests by endpoint and HTTP status class.
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "routesync_upstream_requests_total",
		Help: "Total upstream API requests",
	},
	[]string{"endpoint", "status"},
)

// RetriesTotal tracks requests retried after a throttling response.
var RetriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "routesync_upstream_retries_total",
		Help: "Total upstream requests retried after 429",
	},
	[]string{"endpoint"},
)

// ThrottleWaitSeconds tracks time spent waiting in the outbound rate limiter.
var ThrottleWaitSeconds = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "routesync_throttle_wait_seconds",
		Help:    "Time spent waiting for the outbound rate limiter",
		Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	},
)

// SyncCyclesTotal tracks finished sync cycles by outcome.
var SyncCyclesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "routesync_sync_cycles_total",
		Help: "Total sync cycles by outcome",
	},
	[]string{"outcome"},
)

// ActivitiesSkippedTotal tracks activities dropped for having too few GPS points.
var ActivitiesSkippedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "routesync_activities_skipped_total",
		Help: "Total activities skipped because their trace was unusable",
	},
)

// Generation reports the current sync generation.
var Generation = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "routesync_sync_generation",
		Help: "Current sync generation",
	},
)
