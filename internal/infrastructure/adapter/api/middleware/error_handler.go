package middleware

import (
	"net/http"

	domainerr "github.com/easybots/storefront-backend/internal/domain/error"
	coreport "github.com/easybots/storefront-backend/internal/domain/port/core"
	"github.com/easybots/storefront-backend/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler middleware recovers from handler panics. A panicking webhook
// delivery must still get an HTTP response, otherwise the provider treats the
// dropped connection as a transport failure and retries indefinitely.
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered while handling request", map[string]any{
					"error":  err,
					"method": c.Request.Method,
					"path":   c.Request.URL.Path,
					"ip":     c.ClientIP(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
					Message: "Internal server error",
				})
			}
		}()

		c.Next()
	}
}
