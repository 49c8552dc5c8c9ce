package middleware

import (
	"runtime"
	"strconv"
	"time"

	"fieldscore/metrics"

	"github.com/gin-gonic/gin"
)

// pathLabel returns the route template ("/api/v1/rounds/:id/scores") rather
// than the concrete request path. Round and club IDs are UUIDs, so labelling
// by raw path would mint a new time series per round.
func pathLabel(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return "unmatched"
}

// MetricsMiddleware records request count, duration and in-flight gauge for
// every API call, labelled by route template.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := pathLabel(c)
		method := c.Request.Method

		metrics.RequestInProgress.WithLabelValues(method, path).Inc()
		start := time.Now()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		metrics.RequestCounter.WithLabelValues(status, method, path).Inc()
		metrics.RequestDuration.WithLabelValues(status, method, path).Observe(time.Since(start).Seconds())
		metrics.RequestInProgress.WithLabelValues(method, path).Dec()
	}
}

// UpdateSystemMetrics samples runtime memory and goroutine gauges every 15s
// for the lifetime of the process.
func UpdateSystemMetrics() {
	go func() {
		for {
			var memStats runtime.MemStats
			runtime.ReadMemStats(&memStats)

			metrics.MemoryStats.WithLabelValues("alloc").Set(float64(memStats.Alloc))
			metrics.MemoryStats.WithLabelValues("sys").Set(float64(memStats.Sys))
			metrics.MemoryStats.WithLabelValues("heap_alloc").Set(float64(memStats.HeapAlloc))
			metrics.MemoryStats.WithLabelValues("heap_inuse").Set(float64(memStats.HeapInuse))

			metrics.GoroutineCount.Set(float64(runtime.NumGoroutine()))

			time.Sleep(15 * time.Second)
		}
	}()
}
