package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, route and status.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "llm",
			Subsystem: "advisor",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// RequestDuration observes HTTP request latency by route.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "llm",
			Subsystem: "advisor",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// SyncRunsTotal counts catalog synchronization runs by outcome.
	SyncRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "llm",
			Subsystem: "advisor",
			Name:      "sync_runs_total",
			Help:      "Total catalog synchronization runs",
		},
		[]string{"status"},
	)

	// ModelsSynced tracks how many models the last sync run stored.
	ModelsSynced = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "llm",
			Subsystem: "advisor",
			Name:      "models_synced",
			Help:      "Number of models stored by the last sync run",
		},
	)

	// ResolveRequestsTotal counts model resolutions by category and outcome.
	ResolveRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "llm",
			Subsystem: "advisor",
			Name:      "resolve_requests_total",
			Help:      "Total model resolution requests",
		},
		[]string{"category", "status"},
	)
)

// RecordRequest records one completed HTTP request.
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(durationSec)
}

// RecordSyncRun records a synchronization run and, on success, the stored
// model count.
func RecordSyncRun(status string, count int) {
	SyncRunsTotal.WithLabelValues(status).Inc()
	if status == "success" {
		ModelsSynced.Set(float64(count))
	}
}

// RecordResolve records one model resolution request.
func RecordResolve(category, status string) {
	if category == "" {
		category = "unknown"
	}
	ResolveRequestsTotal.WithLabelValues(category, status).Inc()
}
