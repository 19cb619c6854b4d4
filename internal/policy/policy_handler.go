package policy

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	policyerrors "github.com/mmnete/bimasoft-backend/internal/policy/errors"
	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
	"github.com/mmnete/bimasoft-backend/internal/shared/requestmeta"
	"github.com/mmnete/bimasoft-backend/internal/shared/response"
	"go.uber.org/zap"
)

type Handler struct {
	policies Service
	motor    MotorService
	logger   *zap.Logger
}

func NewHandler(policies Service, motor MotorService, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("policy.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("policy.handler")
	}
	return &Handler{policies: policies, motor: motor, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("policy request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.String("client_ip", requestmeta.ClientIP(c.Request)),
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
	var req CreatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	resp, err := h.policies.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.policies.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, response.NewListMeta(len(resp), ""))
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.writeServiceError(c, policyerrors.ErrInvalidPolicyID)
		return
	}
	resp, err := h.policies.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByCustomer(c *gin.Context) {
	customerID, ok := parseID(c, "customerId")
	if !ok {
		h.writeServiceError(c, policyerrors.ErrInvalidCustomerID)
		return
	}
	resp, err := h.policies.GetByCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, response.NewListMeta(len(resp), ""))
}

func (h *Handler) GetByEntity(c *gin.Context) {
	entityID, ok := parseID(c, "entityId")
	if !ok {
		h.writeServiceError(c, policyerrors.ErrInvalidEntityID)
		return
	}
	resp, err := h.policies.GetByEntity(c.Request.Context(), entityID, c.Param("entityType"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, response.NewListMeta(len(resp), ""))
}

func (h *Handler) GetByStatus(c *gin.Context) {
	resp, err := h.policies.GetByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, response.NewListMeta(len(resp), ""))
}

func (h *Handler) GetByPolicyNumber(c *gin.Context) {
	resp, err := h.policies.GetByPolicyNumber(c.Request.Context(), c.Param("policyNumber"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Search(c *gin.Context) {
	query := c.Query("query")
	resp, err := h.policies.Search(c.Request.Context(), query)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, response.NewListMeta(len(resp), query))
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.writeServiceError(c, policyerrors.ErrInvalidPolicyID)
		return
	}
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.writeServiceError(c, apperror.ErrInvalidInput)
		return
	}
	resp, err := h.policies.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.writeServiceError(c, policyerrors.ErrInvalidPolicyID)
		return
	}
	if err := h.policies.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) CreateMotor(c *gin.Context) {
	var req CreateMotorPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	resp, err := h.motor.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAllMotor(c *gin.Context) {
	resp, err := h.motor.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, response.NewListMeta(len(resp), ""))
}

func (h *Handler) GetMotor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.writeServiceError(c, policyerrors.ErrInvalidPolicyID)
		return
	}
	resp, err := h.motor.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetMotorByPolicy(c *gin.Context) {
	policyID, ok := parseID(c, "policyId")
	if !ok {
		h.writeServiceError(c, policyerrors.ErrInvalidPolicyID)
		return
	}
	resp, err := h.motor.GetByPolicyID(c.Request.Context(), policyID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) SearchMotor(c *gin.Context) {
	query := c.Query("query")
	resp, err := h.motor.Search(c.Request.Context(), query)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, response.NewListMeta(len(resp), query))
}

func (h *Handler) UpdateMotor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.writeServiceError(c, policyerrors.ErrInvalidPolicyID)
		return
	}
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.writeServiceError(c, apperror.ErrInvalidInput)
		return
	}
	resp, err := h.motor.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteMotor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.writeServiceError(c, policyerrors.ErrInvalidPolicyID)
		return
	}
	if err := h.motor.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.NoContent(c)
}
