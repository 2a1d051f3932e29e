package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"eventdash/internal/monitoring"
)

// Metrics records one observation per completed request, labeled by the
// route pattern rather than the raw path to keep cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}

		monitoring.ObservePageRequest(ctx.Request.Method, route, ctx.Writer.Status(), time.Since(start))
	}
}
