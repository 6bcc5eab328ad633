package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalog",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "catalog",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Refresh pipeline
	RefreshesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalog",
			Subsystem: "refresh",
			Name:      "runs_total",
			Help:      "Total refresh runs by outcome",
		},
		[]string{"trigger", "outcome"},
	)

	RefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "catalog",
			Subsystem: "refresh",
			Name:      "duration_seconds",
			Help:      "End-to-end refresh duration in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120, 300},
		},
	)

	SourceFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalog",
			Subsystem: "refresh",
			Name:      "source_failures_total",
			Help:      "Total source fetch failures",
		},
		[]string{"provider", "source"},
	)

	// Catalog state
	ModelsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "catalog",
			Subsystem: "store",
			Name:      "models_loaded",
			Help:      "Number of models in the current snapshot",
		},
	)
)

// RecordRequest records one served HTTP request.
func RecordRequest(method, endpoint string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	RequestsTotal.WithLabelValues(method, endpoint, code).Inc()
	RequestDuration.WithLabelValues(method, endpoint, code).Observe(duration.Seconds())
}

// RecordRefresh records one completed (or conflicted) refresh run.
func RecordRefresh(trigger, outcome string, duration time.Duration, modelsLoaded int) {
	RefreshesTotal.WithLabelValues(trigger, outcome).Inc()
	if outcome == "success" {
		RefreshDuration.Observe(duration.Seconds())
		ModelsLoaded.Set(float64(modelsLoaded))
	}
}

// RecordSourceFailure counts one failed source fetch.
func RecordSourceFailure(provider, source string) {
	SourceFailuresTotal.WithLabelValues(provider, source).Inc()
}
