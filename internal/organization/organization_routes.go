package organization

import (
	"github.com/gin-gonic/gin"
	"github.com/mmnete/bimasoft-backend/internal/middleware"
)

// PathFor is the collection path segment of an organization type.
func PathFor(orgType string) string {
	if orgType == TypeBroker {
		return "/insurance/brokers"
	}
	return "/insurance/companies"
}

// RegisterRoutes mounts the read and maintenance routes. Onboarding and
// approval live with the onboarding handler on the same group.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	orgs := r.Group(PathFor(handler.service.Type()))
	{
		orgs.GET("", middleware.RateLimitByClient(5, 20), handler.GetAll)
		orgs.GET("/search", middleware.RateLimitByClient(5, 20), handler.Search)
		orgs.GET("/pending", middleware.RateLimitByClient(5, 20), handler.GetPending)
		orgs.GET("/:id", middleware.RateLimitByClient(5, 20), handler.GetByID)
		orgs.PUT("/:id", middleware.RateLimitByClient(1, 5), handler.Update)
		orgs.DELETE("/:id", middleware.RateLimitByClient(0.5, 2), handler.Delete)
	}
}
