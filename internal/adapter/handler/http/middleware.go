package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sm8ta/registration_microservice/internal/core/ports"
)

// RecoveryMiddleware turns a panic into the opaque 500 body.
func RecoveryMiddleware(logger ports.LoggerPort) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("Recovered from panic in HTTP handler", map[string]interface{}{
			"panic":  recovered,
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{
			Error: internalServerError,
		})
	})
}
