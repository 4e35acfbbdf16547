package middleware

import (
	"net/http"
	"time"

	coreport "github.com/easybots/storefront-backend/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// Logger middleware logs every request with its outcome. Rejected webhook
// deliveries surface at warn or error severity so provider redelivery storms
// are visible in the logs.
func Logger(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		fields := map[string]any{
			"method":     method,
			"path":       path,
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.Errors()
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("Request failed", fields)
		case status >= http.StatusBadRequest:
			logger.Warn("Request rejected", fields)
		default:
			logger.Info("Request processed", fields)
		}
	}
}
