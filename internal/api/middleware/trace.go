package middleware

import (
	"Marketplace/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	TraceHeader     = "X-Trace-ID"
	maxTraceIDBytes = 64
)

// TraceMiddleware 沿用上游传入的 trace id，缺失或超长时重新生成
func TraceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceHeader)
		if traceID == "" || len(traceID) > maxTraceIDBytes {
			traceID = uuid.New().String()
		}

		c.Set(logger.TraceIDKey, traceID)
		c.Request = c.Request.WithContext(logger.WithTraceID(c.Request.Context(), traceID))

		c.Header(TraceHeader, traceID)
		c.Next()
	}
}
