package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestLogger logs each request with a correlation id and safe
// fields. A missing X-Request-Id header gets a generated one.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := strings.TrimSpace(c.GetHeader("X-Request-Id"))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-Id", requestID)

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("route", route),
			zap.Int("status", c.Writer.Status()),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		}
		if lastErr := c.Errors.Last(); lastErr != nil {
			fields = append(fields, zap.Error(lastErr.Err))
		}

		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			log.Error("http request", fields...)
		case c.Writer.Status() >= http.StatusBadRequest:
			log.Warn("http request", fields...)
		default:
			log.Info("http request", fields...)
		}
	}
}

// ScanIngestRateLimit throttles batch ingestion per client. The
// limiter is a no-op unless redis and the rateLimit settings are
// configured, so local setups pass through untouched.
func (s *Server) ScanIngestRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.ingestLimiter == nil || !s.ingestLimiter.Enabled() {
			c.Next()
			return
		}

		allowed, err := s.ingestLimiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			s.log.Warn("scan ingest rate limit check failed", zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			respond(c, http.StatusTooManyRequests, "Too many scan requests, slow down.", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
