package brokerlink

import (
	"github.com/gin-gonic/gin"
	"github.com/mmnete/bimasoft-backend/internal/middleware"
)

// RegisterRoutes shares the :id wildcard name with the organization routes
// mounted on the same prefixes.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	brokers := r.Group("/insurance/brokers/:id/companies")
	{
		brokers.GET("", middleware.RateLimitByClient(5, 20), handler.CompaniesForBroker)
		brokers.POST("/:companyId", middleware.RateLimitByClient(1, 5), handler.Add)
		brokers.DELETE("/:companyId", middleware.RateLimitByClient(0.5, 2), handler.Remove)
	}

	r.GET("/insurance/companies/:id/brokers", middleware.RateLimitByClient(5, 20), handler.BrokersForCompany)
}
