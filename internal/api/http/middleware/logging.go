// Package middleware contains gin middleware shared by the HTTP API.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/resumeforge/resumeforge-server/internal/logger"
)

// RequestLogger logs each request with its status and duration.
func RequestLogger(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		l.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}
