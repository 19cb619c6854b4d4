package registry

import (
	"github.com/gin-gonic/gin"
	"github.com/mmnete/bimasoft-backend/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/insurance/companies/search-company", middleware.RateLimitByClient(5, 20), handler.SearchCompanies())
	r.GET("/insurance/brokers/search-broker", middleware.RateLimitByClient(5, 20), handler.SearchBrokers())
	r.GET("/insurance/search-entity", middleware.RateLimitByClient(5, 20), handler.SearchEntities())
}
