package onboarding

import (
	"github.com/gin-gonic/gin"
	"github.com/mmnete/bimasoft-backend/internal/middleware"
	"github.com/mmnete/bimasoft-backend/internal/organization"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	for _, orgType := range []string{organization.TypeCompany, organization.TypeBroker} {
		path := organization.PathFor(orgType)
		r.POST(path,
			middleware.RateLimitByClient(0.2, 2),
			middleware.Idempotency(rdb),
			handler.Create(orgType),
		)
		r.POST(path+"/:id/approve", middleware.RateLimitByClient(0.5, 2), handler.Approve(orgType))
	}

	r.POST("/insurance/organizations/approve", middleware.RateLimitByClient(0.5, 2), handler.ApproveByBody)
}
