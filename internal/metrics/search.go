package metrics

import "github.com/prometheus/client_golang/prometheus"

// Store operation Prometheus metrics.
var (
	StoreRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ordex",
			Name:      "store_requests_total",
			Help:      "Total number of document store requests",
		},
		[]string{"operation", "status"},
	)

	StoreRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ordex",
			Name:      "store_request_duration_seconds",
			Help:      "Document store request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"operation"},
	)

	SearchHitsDroppedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ordex",
			Name:      "search_hits_dropped_total",
			Help:      "Search hits dropped because the document failed to map or validate",
		},
	)
)

var storeMetricsRegistered bool

// RegisterStoreMetrics registers Prometheus store metrics. Must be called once from main.
func RegisterStoreMetrics() {
	if storeMetricsRegistered {
		return
	}
	prometheus.MustRegister(StoreRequestsTotal)
	prometheus.MustRegister(StoreRequestDuration)
	prometheus.MustRegister(SearchHitsDroppedTotal)
	storeMetricsRegistered = true
}
