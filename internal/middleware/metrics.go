package middleware

import (
	"strconv"
	"time"

	"github.com/SscSPs/ledger_core/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// RequestMetrics records request latency per matched route.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status()/100)+"xx").
			Observe(time.Since(start).Seconds())
	}
}
