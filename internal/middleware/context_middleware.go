package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/mmnete/bimasoft-backend/internal/shared/contextutil"
	"go.uber.org/zap"
)

// ContextLogger stores a logger tagged with the request id in the request
// context. It runs after RequestID; the API client is attached later by
// APIKey.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		reqLogger := logger.With(
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)

		c.Request = c.Request.WithContext(contextutil.WithLogger(ctx, reqLogger))
		c.Next()
	}
}
