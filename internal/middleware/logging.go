package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-be/internal/auth"
	"storefront-be/internal/logger"
)

// AccessLog writes one structured line per request.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote_ip", c.ClientIP()),
		}
		if p := auth.PrincipalFrom(c.Request.Context()); p != nil {
			fields = append(fields, zap.Int64("user_id", p.UserID))
		}

		logger.FromCtx(c.Request.Context()).Info("http request", fields...)
	}
}
