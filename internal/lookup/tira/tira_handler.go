package tira

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmnete/bimasoft-backend/internal/middleware"
	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
	"github.com/mmnete/bimasoft-backend/internal/shared/response"
	"go.uber.org/zap"
)

type VerifyRequest struct {
	RegistrationNumber string `json:"registrationNumber"`
}

type Handler struct {
	verifier Verifier
	logger   *zap.Logger
}

func NewHandler(verifier Verifier, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("tira.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("tira.handler")
	}
	return &Handler{verifier: verifier, logger: l}
}

func (h *Handler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.ErrInvalidInput)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	note, err := h.verifier.Verify(c.Request.Context(), req.RegistrationNumber)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("cover note verification failed", zap.Int("status", httpErr.Status), zap.String("message", httpErr.Message))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Vehicle insurance verified successfully", note)
}

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/motor/verify", middleware.RateLimitByClient(1, 5), handler.Verify)
}
