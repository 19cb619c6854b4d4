package customer

import (
	"github.com/gin-gonic/gin"
	"github.com/mmnete/bimasoft-backend/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	customers := r.Group("/customers")
	{
		customers.GET("", middleware.RateLimitByClient(5, 20), handler.GetAll)
		customers.GET("/search", middleware.RateLimitByClient(5, 20), handler.Search)
		customers.GET("/type/:type", middleware.RateLimitByClient(5, 20), handler.GetByType)
		customers.GET("/tin/:tin", middleware.RateLimitByClient(5, 20), handler.GetByTin)
		customers.GET("/:id", middleware.RateLimitByClient(5, 20), handler.GetByID)
		customers.GET("/:id/organizations", middleware.RateLimitByClient(5, 20), handler.GetOrganizations)
		customers.POST("", middleware.RateLimitByClient(1, 5), handler.Create)
		customers.PUT("/:id", middleware.RateLimitByClient(1, 5), handler.Update)
		customers.DELETE("/:id", middleware.RateLimitByClient(0.5, 2), handler.Delete)
	}

	orgCustomers := r.Group("/organizations/:id/customers")
	{
		orgCustomers.GET("", middleware.RateLimitByClient(5, 20), handler.GetByOrganization)
		orgCustomers.POST("", middleware.RateLimitByClient(1, 5), handler.CreateForOrganization)
		orgCustomers.POST("/:customerId", middleware.RateLimitByClient(1, 5), handler.Link)
		orgCustomers.DELETE("/:customerId", middleware.RateLimitByClient(0.5, 2), handler.Unlink)
	}

	individuals := r.Group("/individual-customers")
	{
		individuals.GET("", middleware.RateLimitByClient(5, 20), handler.GetAllIndividuals)
		individuals.GET("/national-id/:nationalId", middleware.RateLimitByClient(5, 20), handler.GetIndividualByNationalID)
		individuals.GET("/:id", middleware.RateLimitByClient(5, 20), handler.GetIndividual)
		individuals.POST("", middleware.RateLimitByClient(1, 5), handler.CreateIndividual)
		individuals.PUT("/:id", middleware.RateLimitByClient(1, 5), handler.UpdateIndividual)
		individuals.DELETE("/:id", middleware.RateLimitByClient(0.5, 2), handler.DeleteIndividual)
	}

	corporates := r.Group("/corporate-customers")
	{
		corporates.GET("", middleware.RateLimitByClient(5, 20), handler.GetAllCorporates)
		corporates.GET("/brela/:brela", middleware.RateLimitByClient(5, 20), handler.GetCorporateByBrela)
		corporates.GET("/:id", middleware.RateLimitByClient(5, 20), handler.GetCorporate)
		corporates.POST("", middleware.RateLimitByClient(1, 5), handler.CreateCorporate)
		corporates.PUT("/:id", middleware.RateLimitByClient(1, 5), handler.UpdateCorporate)
		corporates.DELETE("/:id", middleware.RateLimitByClient(0.5, 2), handler.DeleteCorporate)
	}
}
