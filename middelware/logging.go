package middelware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"reading-app-backend/models"
	"reading-app-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

// quietPaths are logged at debug level to keep probes out of the info stream
var quietPaths = map[string]struct{}{
	"/health": {},
}

// LoggingMiddleware provides request logging
type LoggingMiddleware struct {
	logger logger.Logger
}

// NewLoggingMiddleware creates a new logging middleware
func NewLoggingMiddleware(log logger.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{
		logger: log,
	}
}

// StructuredLogger provides structured logging for requests
func (m *LoggingMiddleware) StructuredLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		fields := map[string]interface{}{
			"method":     c.Request.Method,
			"path":       path,
			"query":      raw,
			"status":     status,
			"latency":    time.Since(start).String(),
			"ip":         c.ClientIP(),
			"user_agent": c.Request.UserAgent(),
		}
		if id, ok := c.Get(RequestIDKey); ok {
			fields[RequestIDKey] = id
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		entry := m.logger.WithFields(fields)
		switch {
		case status >= http.StatusInternalServerError:
			entry.Error("HTTP request completed with error")
		case status >= http.StatusBadRequest:
			entry.Warn("HTTP request completed with client error")
		default:
			if _, quiet := quietPaths[path]; quiet {
				entry.Debug("HTTP request completed successfully")
				return
			}
			entry.Info("HTTP request completed successfully")
		}
	}
}

// Recovery turns panics into 500 responses.
// With debug enabled the panic value and stack trace are returned to the
// client; otherwise the body is opaque.
func (m *LoggingMiddleware) Recovery(debugMode bool) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered interface{}) {
		stack := string(debug.Stack())
		requestID := c.GetString(RequestIDKey)

		m.logger.WithFields(map[string]interface{}{
			RequestIDKey: requestID,
			"path":       c.Request.URL.Path,
			"stack":      stack,
		}).Errorf("Panic recovered: %v", recovered)

		body := models.ErrorResponse{
			Detail: "Internal Server Error",
			ID:     requestID,
		}
		if debugMode {
			body.Error = fmt.Sprint(recovered)
			body.Stack = stack
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	})
}
