package middleware

import (
	"time"

	"github.com/Marga-Ghale/portfolio-api/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or assigns a new one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestLogger logs all incoming requests with details
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		uri := c.Request.URL.RequestURI()
		method := c.Request.Method

		// Process request
		c.Next()

		status := c.Writer.Status()
		entry := logger.Log.WithFields(logrus.Fields{
			"request_id":  c.GetString("requestID"),
			"http_method": method,
			"uri":         uri,
			"status_code": status,
			"latency_ms":  time.Since(start).Milliseconds(),
			"client_ip":   c.ClientIP(),
		})

		for _, e := range c.Errors {
			entry = entry.WithError(e.Err)
		}

		switch {
		case status >= 500:
			entry.Error("❌ request failed")
		case status >= 400:
			entry.Warn("⚠️ request rejected")
		default:
			entry.Info("✅ request served")
		}
	}
}
