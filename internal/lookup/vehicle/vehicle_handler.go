package vehicle

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
	"github.com/mmnete/bimasoft-backend/internal/shared/response"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("vehicle.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("vehicle.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetMotorDetails(c *gin.Context) {
	name := c.Query("name")
	resp, err := h.service.Lookup(c.Request.Context(), name)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("motor details lookup failed", zap.String("make", name), zap.Int("status", httpErr.Status))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, resp, response.NewListMeta(len(resp), name))
}
