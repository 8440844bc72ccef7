package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// IssuesCreatedTotal counts successful intakes by category.
	IssuesCreatedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "civictrack",
		Subsystem: "lifecycle",
		Name:      "issues_created_total",
		Help:      "Total number of issues created, labeled by category.",
	}, []string{"category"})

	// StatusUpdatesTotal counts applied status updates by previous and new status.
	StatusUpdatesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "civictrack",
		Subsystem: "lifecycle",
		Name:      "status_updates_total",
		Help:      "Total number of status updates applied, labeled by from and to status.",
	}, []string{"from", "to"})

	// AnalyticsDurationSeconds is the time to take a snapshot and aggregate it.
	AnalyticsDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "civictrack",
		Subsystem: "analytics",
		Name:      "compute_duration_seconds",
		Help:      "Time to read the analytics snapshot and compute KPIs.",
		Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	})

	// HTTPRequestsTotal counts handled requests by route and status code.
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "civictrack",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests, labeled by method, route and code.",
	}, []string{"method", "route", "code"})

	// HTTPRequestDurationSeconds is the handler latency by route.
	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "civictrack",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP handler latency, labeled by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// Register registers service metrics with the default Prometheus registry.
// Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			IssuesCreatedTotal,
			StatusUpdatesTotal,
			AnalyticsDurationSeconds,
			HTTPRequestsTotal,
			HTTPRequestDurationSeconds,
		)
	})
}
