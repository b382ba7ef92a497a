package middleware

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	ports "content-platform-service/internal/domain/ports/output"
	"content-platform-service/internal/logger"
)

// RequestLogger logs each request and records HTTP metrics.
func RequestLogger(log *logger.Logger, metrics ports.MetricsProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		status := strconv.Itoa(c.Writer.Status())
		duration := time.Since(start)

		metrics.IncrementHTTPRequests(c.Request.Method, path, status)
		metrics.RecordHTTPRequestDuration(c.Request.Method, path, status, duration)

		log.Info("HTTP request",
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("status", status),
			slog.Duration("duration", duration))
	}
}
