package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"luminous/pkg/metrics"
)

// MetricsMiddleware records HTTP metrics labelled by route template, so
// /api/projects/1 and /api/projects/2 share a series.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.IncrementInFlight()
		defer m.DecrementInFlight()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.RecordHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
