package monitoring

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pageRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_requests_total",
			Help: "Total page requests served, by route and status",
		},
		[]string{"method", "route", "status"},
	)

	pageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "page_request_duration_seconds",
			Help:    "Page request handling duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	backendCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backend_api_calls_total",
			Help: "Total calls to the backend REST API, by operation and status",
		},
		[]string{"operation", "status"},
	)

	backendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "backend_api_call_duration_seconds",
			Help:    "Backend API call duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

func ObservePageRequest(method, route string, status int, elapsed time.Duration) {
	pageRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	pageDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveBackendCall records one outbound call. A status of 0 means the
// call failed before a response was received.
func ObserveBackendCall(operation string, status int, elapsed time.Duration) {
	backendCalls.WithLabelValues(operation, strconv.Itoa(status)).Inc()
	backendDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}
