package auditlog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	auditlogerrors "github.com/mmnete/bimasoft-backend/internal/auditlog/errors"
	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
	"github.com/mmnete/bimasoft-backend/internal/shared/requestmeta"
	"github.com/mmnete/bimasoft-backend/internal/shared/response"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auditlog.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auditlog.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("audit log request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	return id, err == nil && id > 0
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAuditLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req, requestmeta.FromRequest(c.Request))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
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
	id, ok := parseID(c, "id")
	if !ok {
		h.writeServiceError(c, auditlogerrors.ErrInvalidAuditLogID)
		return
	}
	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByEntity(c *gin.Context) {
	entityID, ok := parseID(c, "entityId")
	if !ok {
		h.writeServiceError(c, auditlogerrors.ErrInvalidEntityID)
		return
	}
	resp, err := h.service.GetByEntity(c.Request.Context(), entityID, c.Param("entityType"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, response.NewListMeta(len(resp), ""))
}

func (h *Handler) GetOrganizationMetadata(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.writeServiceError(c, auditlogerrors.ErrInvalidEntityID)
		return
	}
	resp, err := h.service.GetOrganizationMetadata(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, response.NewListMeta(len(resp), ""))
}
