package organization

import (
	"net/http"
	"strconv"

	organizationerrors "github.com/mmnete/bimasoft-backend/internal/organization/errors"
	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
	"github.com/mmnete/bimasoft-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	name := Label(service.Type()) + ".handler"
	l := zap.L().Named(name)
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named(name)
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("organization request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// ParseID reads a positive integer path parameter.
func ParseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, response.NewListMeta(len(resp), ""))
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		h.writeServiceError(c, organizationerrors.ErrInvalidOrganizationID)
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Search(c *gin.Context) {
	query := c.Query("query")
	resp, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, response.NewListMeta(len(resp), query))
}

func (h *Handler) GetPending(c *gin.Context) {
	resp, err := h.service.GetPending(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, response.NewListMeta(len(resp), ""))
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		h.writeServiceError(c, organizationerrors.ErrInvalidOrganizationID)
		return
	}

	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.logger.Warn("http update organization invalid body", zap.Error(err))
		h.writeServiceError(c, apperror.ErrInvalidInput)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		h.writeServiceError(c, organizationerrors.ErrInvalidOrganizationID)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.NoContent(c)
}
