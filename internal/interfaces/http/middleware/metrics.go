package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"ledger-recovery.backend/pkg/metrics"
)

// MetricsMiddleware records request counts and latencies per route.
// The route template is used as the path label so client ids don't
// explode cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.RequestCount.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.RequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}
