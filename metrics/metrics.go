package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCounter counts HTTP requests by status code, method, and path
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fieldscore_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fieldscore_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	// RequestInProgress counts HTTP requests currently being processed
	RequestInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fieldscore_http_requests_in_progress",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method", "path"},
	)

	// RateLimiterRejections counts rejected requests due to rate limiting
	RateLimiterRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fieldscore_rate_limiter_rejections_total",
			Help: "Total number of requests rejected by rate limiter",
		},
		[]string{"ip"},
	)

	// DatabaseOperationDuration measures database operation duration
	DatabaseOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fieldscore_db_operation_duration_seconds",
			Help:    "Database operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	// ScoresRecorded counts target scores recorded per scoring system
	ScoresRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fieldscore_scores_recorded_total",
			Help: "Total number of target scores recorded",
		},
		[]string{"scoring_system"},
	)

	// RoundsCompleted counts completed rounds per scoring system
	RoundsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fieldscore_rounds_completed_total",
			Help: "Total number of completed rounds",
		},
		[]string{"scoring_system"},
	)

	// PersonalBests counts personal bests detected at round completion
	PersonalBests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fieldscore_personal_bests_total",
			Help: "Total number of personal bests detected",
		},
	)

	// WebsocketConnections tracks open live-score websocket connections
	WebsocketConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fieldscore_websocket_connections",
			Help: "Number of open live score websocket connections",
		},
	)

	// MemoryStats tracks memory usage stats
	MemoryStats = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fieldscore_memory_stats_bytes",
			Help: "Memory statistics in bytes",
		},
		[]string{"type"},
	)

	// GoroutineCount tracks the number of goroutines
	GoroutineCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fieldscore_goroutine_count",
			Help: "Number of goroutines",
		},
	)
)

// RecordDBOperation records the duration of a database operation
func RecordDBOperation(operation string, table string, startTime time.Time) {
	duration := time.Since(startTime).Seconds()
	DatabaseOperationDuration.WithLabelValues(operation, table).Observe(duration)
}
