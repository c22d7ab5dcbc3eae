// Package metrics expõe as métricas Prometheus da API
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_requests_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	metricRowsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metrics_loader_rows_total",
			Help: "Rows read from the metrics source, by outcome",
		},
		[]string{"outcome"}, // kept, filtered or unparsable
	)

	metricsLoadDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "metrics_loader_duration_seconds",
			Help:    "Time spent streaming the metrics source",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	snapshotCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metrics_snapshot_cache_total",
			Help: "Snapshot cache lookups, by result",
		},
		[]string{"result"}, // hit or miss
	)

	loginAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_login_attempts_total",
			Help: "Login attempts, by result",
		},
		[]string{"result"}, // success or failure
	)
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		metricRowsProcessed,
		metricsLoadDuration,
		snapshotCacheTotal,
		loginAttemptsTotal,
	)
}

// Handler serve o endpoint /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}

func ObserveHTTPRequest(method, path string, statusCode int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func ObserveLoad(kept, filtered, unparsable int, duration time.Duration) {
	metricRowsProcessed.WithLabelValues("kept").Add(float64(kept))
	metricRowsProcessed.WithLabelValues("filtered").Add(float64(filtered))
	metricRowsProcessed.WithLabelValues("unparsable").Add(float64(unparsable))
	metricsLoadDuration.Observe(duration.Seconds())
}

func CacheHit() {
	snapshotCacheTotal.WithLabelValues("hit").Inc()
}

func CacheMiss() {
	snapshotCacheTotal.WithLabelValues("miss").Inc()
}

func LoginAttempt(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	loginAttemptsTotal.WithLabelValues(result).Inc()
}
