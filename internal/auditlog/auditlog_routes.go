package auditlog

import (
	"github.com/gin-gonic/gin"
	"github.com/mmnete/bimasoft-backend/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	logs := r.Group("/audit-logs")
	{
		logs.POST("", middleware.RateLimitByClient(2, 10), handler.Create)
		logs.GET("", middleware.RateLimitByClient(5, 20), handler.GetAll)
		logs.GET("/entity/:entityId/:entityType", middleware.RateLimitByClient(5, 20), handler.GetByEntity)
		logs.GET("/:id", middleware.RateLimitByClient(5, 20), handler.GetByID)
	}

	r.GET("/insurance/organizations/:id/metadata", middleware.RateLimitByClient(5, 20), handler.GetOrganizationMetadata)
}
