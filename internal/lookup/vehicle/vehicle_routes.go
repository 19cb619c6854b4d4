package vehicle

import (
	"github.com/gin-gonic/gin"
	"github.com/mmnete/bimasoft-backend/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/motor-details", middleware.RateLimitByClient(2, 10), handler.GetMotorDetails)
}
