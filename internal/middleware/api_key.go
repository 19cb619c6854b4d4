package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmnete/bimasoft-backend/internal/access"
	"github.com/mmnete/bimasoft-backend/internal/shared/contextutil"
	"go.uber.org/zap"
)

const APIKeyHeader = "x-api-key"

func forbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
}

// APIKey resolves the x-api-key header to a client and asks the access
// service whether that client may call the route. Every rejection produces
// the same 403 body.
func APIKey(svc access.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, ok := svc.ResolveKey(c.GetHeader(APIKeyHeader))
		if !ok {
			forbidden(c)
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		ctx := c.Request.Context()
		logger := contextutil.GetLogger(ctx, zap.L())

		allowed, err := svc.Enforce(access.EnforceRequest{
			Client: client,
			Path:   c.Request.URL.Path,
			Method: c.Request.Method,
		})
		if err != nil || !allowed {
			logger.Warn("api client denied",
				zap.String("client", client),
				zap.String("route", path),
				zap.Error(err),
			)
			forbidden(c)
			return
		}

		c.Set("api_client", client)
		ctx = contextutil.WithClient(ctx, client)
		ctx = contextutil.WithLogger(ctx, logger.With(zap.String("client", client)))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
