package middleware

import (
	"time"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// TraceIDHeader is the HTTP header for trace ID
	TraceIDHeader = "X-Trace-ID"

	// TraceIDContextKey is the gin context key for trace ID
	TraceIDContextKey = "traceID"
)

// TraceID extracts or generates a trace ID and puts it on the request context
// so services can log with logger.TraceFromContext.
func TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceIDHeader)
		if traceID == "" {
			traceID = uuid.New().String()
		}

		c.Header(TraceIDHeader, traceID)
		c.Set(TraceIDContextKey, traceID)
		c.Request = c.Request.WithContext(logger.ContextWithTraceID(c.Request.Context(), traceID))

		c.Next()
	}
}

// GetTraceID retrieves the trace ID from gin context
func GetTraceID(c *gin.Context) string {
	return c.GetString(TraceIDContextKey)
}

// RequestLogger logs one line per request once the handler chain returns.
func RequestLogger() gin.HandlerFunc {
	log := logger.New("http")

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		reqLog := log.TraceFromContext(c.Request.Context())
		switch {
		case status >= 500:
			reqLog.Warn("request failed", args...)
		default:
			reqLog.Info("request", args...)
		}
	}
}
