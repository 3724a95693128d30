package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

type RequestObserver interface {
	ObserveRequest(method, path string, status int, elapsed time.Duration)
}

// MetricsMiddleware labels by route template so path params do not explode
// cardinality. Unmatched routes are reported as "unmatched".
func MetricsMiddleware(obs RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		obs.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
