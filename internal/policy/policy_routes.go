package policy

import (
	"github.com/gin-gonic/gin"
	"github.com/mmnete/bimasoft-backend/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	policies := r.Group("/policies")
	{
		policies.GET("", middleware.RateLimitByClient(5, 20), handler.GetAll)
		policies.GET("/search", middleware.RateLimitByClient(5, 20), handler.Search)
		policies.GET("/customer/:customerId", middleware.RateLimitByClient(5, 20), handler.GetByCustomer)
		policies.GET("/entity/:entityId/:entityType", middleware.RateLimitByClient(5, 20), handler.GetByEntity)
		policies.GET("/status/:status", middleware.RateLimitByClient(5, 20), handler.GetByStatus)
		policies.GET("/number/:policyNumber", middleware.RateLimitByClient(5, 20), handler.GetByPolicyNumber)
		policies.GET("/:id", middleware.RateLimitByClient(5, 20), handler.GetByID)
		policies.POST("", middleware.RateLimitByClient(1, 5), handler.Create)
		policies.PUT("/:id", middleware.RateLimitByClient(1, 5), handler.Update)
		policies.DELETE("/:id", middleware.RateLimitByClient(0.5, 2), handler.Delete)
	}

	motor := r.Group("/motor-policies")
	{
		motor.GET("", middleware.RateLimitByClient(5, 20), handler.GetAllMotor)
		motor.GET("/search", middleware.RateLimitByClient(5, 20), handler.SearchMotor)
		motor.GET("/policy/:policyId", middleware.RateLimitByClient(5, 20), handler.GetMotorByPolicy)
		motor.GET("/:id", middleware.RateLimitByClient(5, 20), handler.GetMotor)
		motor.POST("", middleware.RateLimitByClient(1, 5), handler.CreateMotor)
		motor.PUT("/:id", middleware.RateLimitByClient(1, 5), handler.UpdateMotor)
		motor.DELETE("/:id", middleware.RateLimitByClient(0.5, 2), handler.DeleteMotor)
	}
}
