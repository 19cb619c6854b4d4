package customer

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	customererrors "github.com/mmnete/bimasoft-backend/internal/customer/errors"
	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
	"github.com/mmnete/bimasoft-backend/internal/shared/requestmeta"
	"github.com/mmnete/bimasoft-backend/internal/shared/response"
	"go.uber.org/zap"
)

type Handler struct {
	customers   Service
	individuals IndividualService
	corporates  CorporateService
	logger      *zap.Logger
}

func NewHandler(customers Service, individuals IndividualService, corporates CorporateService, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("customer.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("customer.handler")
	}
	return &Handler{customers: customers, individuals: individuals, corporates: corporates, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("customer request failed",
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
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	resp, err := h.customers.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) CreateForOrganization(c *gin.Context) {
	orgID, ok := parseID(c, "id")
	if !ok {
		h.writeServiceError(c, customererrors.ErrInvalidOrganizationID)
		return
	}
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	resp, err := h.customers.CreateForOrganization(c.Request.Context(), orgID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.customers.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, response.NewListMeta(len(resp), ""))
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.writeServiceError(c, customererrors.ErrInvalidCustomerID)
		return
	}
	resp, err := h.customers.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByType(c *gin.Context) {
	resp, err := h.customers.GetByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, response.NewListMeta(len(resp), ""))
}

func (h *Handler) GetByTin(c *gin.Context) {
	resp, err := h.customers.GetByTin(c.Request.Context(), c.Param("tin"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Search(c *gin.Context) {
	query := c.Query("query")
	resp, err := h.customers.Search(c.Request.Context(), query)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, response.NewListMeta(len(resp), query))
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.writeServiceError(c, customererrors.ErrInvalidCustomerID)
		return
	}
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.writeServiceError(c, apperror.ErrInvalidInput)
		return
	}
	resp, err := h.customers.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.writeServiceError(c, customererrors.ErrInvalidCustomerID)
		return
	}
	if err := h.customers.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) GetByOrganization(c *gin.Context) {
	orgID, ok := parseID(c, "id")
	if !ok {
		h.writeServiceError(c, customererrors.ErrInvalidOrganizationID)
		return
	}
	resp, err := h.customers.GetByOrganization(c.Request.Context(), orgID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, response.NewListMeta(len(resp), ""))
}

func (h *Handler) parseLink(c *gin.Context) (int64, int64, bool) {
	orgID, ok := parseID(c, "id")
	if !ok {
		h.writeServiceError(c, customererrors.ErrInvalidOrganizationID)
		return 0, 0, false
	}
	customerID, ok := parseID(c, "customerId")
	if !ok {
		h.writeServiceError(c, customererrors.ErrInvalidCustomerID)
		return 0, 0, false
	}
	return orgID, customerID, true
}

func (h *Handler) Link(c *gin.Context) {
	orgID, customerID, ok := h.parseLink(c)
	if !ok {
		return
	}
	if err := h.customers.Link(c.Request.Context(), orgID, customerID); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, "Customer linked to organization", nil)
}

func (h *Handler) Unlink(c *gin.Context) {
	orgID, customerID, ok := h.parseLink(c)
	if !ok {
		return
	}
	if err := h.customers.Unlink(c.Request.Context(), orgID, customerID); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) GetOrganizations(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.writeServiceError(c, customererrors.ErrInvalidCustomerID)
		return
	}
	resp, err := h.customers.GetOrganizations(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
