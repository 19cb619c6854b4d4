package user

import (
	"github.com/gin-gonic/gin"
	"github.com/mmnete/bimasoft-backend/internal/identity"
	"github.com/mmnete/bimasoft-backend/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, provider identity.Provider) {
	users := r.Group("/users")
	{
		users.GET("", middleware.RateLimitByClient(5, 20), handler.GetAll)
		users.GET("/search", middleware.RateLimitByClient(5, 20), handler.Search)
		users.GET("/role/:role", middleware.RateLimitByClient(5, 20), handler.GetByRole)
		users.GET("/insurance-entity/:entityId/:entityType", middleware.RateLimitByClient(5, 20), handler.GetByInsuranceEntity)
		users.GET("/:id", middleware.RateLimitByClient(5, 20), handler.GetByID)
		users.POST("", middleware.RateLimitByClient(1, 5), handler.Create)
		users.PUT("/:id", middleware.RateLimitByClient(1, 5), handler.Update)
		users.DELETE("/:id", middleware.RateLimitByClient(0.5, 2), handler.Delete)
	}

	r.POST("/login", middleware.RateLimitByIP(0.5, 5), handler.Login)
	r.POST("/logout", middleware.RateLimitByClient(1, 5), handler.Logout)
	r.GET("/check-logged-in", middleware.RateLimitByClient(5, 20), middleware.BearerSession(provider), handler.CheckLoggedIn)
}
