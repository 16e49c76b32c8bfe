package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is read from and echoed back on every request.
const RequestIDHeader = "X-Request-ID"

// Middleware tags the request context with a request id and request metadata,
// recovers panics as 500s and logs one entry per processed request. Health
// probes are not logged.
func Middleware(l *Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = "req-" + uuid.NewString()
			c.Request.Header.Set(RequestIDHeader, requestID)
		}
		c.Writer.Header().Set(RequestIDHeader, requestID)

		ctx := WithFields(c.Request.Context(),
			Field{"request_id", requestID},
			Field{"method", c.Request.Method},
			Field{"path", c.Request.URL.Path},
			Field{"client_ip", c.ClientIP()},
		)
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				l.Error(ctx, "Recovered from panic", fmt.Errorf("reason: %+v", r))
				c.AbortWithStatus(http.StatusInternalServerError)
			}
			if c.Request.URL.Path == "/health" {
				return
			}

			fields := []Field{
				{"route", c.FullPath()},
				{"status", c.Writer.Status()},
				{"latency_ns", time.Since(start).Nanoseconds()},
			}
			if c.Writer.Status() >= http.StatusInternalServerError {
				l.Warn(ctx, "Request processed", fields...)
				return
			}
			l.Info(ctx, "Request processed", fields...)
		}()
		c.Next()
	}
}
