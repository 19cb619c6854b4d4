package brokerlink

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	brokerlinkerrors "github.com/mmnete/bimasoft-backend/internal/brokerlink/errors"
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
	l := zap.L().Named("brokerlink.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("brokerlink.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("broker link request failed",
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

func (h *Handler) parsePair(c *gin.Context) (int64, int64, bool) {
	brokerID, ok := parseID(c, "id")
	if !ok {
		h.writeServiceError(c, brokerlinkerrors.ErrInvalidBrokerID)
		return 0, 0, false
	}
	companyID, ok := parseID(c, "companyId")
	if !ok {
		h.writeServiceError(c, brokerlinkerrors.ErrInvalidCompanyID)
		return 0, 0, false
	}
	return brokerID, companyID, true
}

func (h *Handler) Add(c *gin.Context) {
	brokerID, companyID, ok := h.parsePair(c)
	if !ok {
		return
	}
	if err := h.service.Add(c.Request.Context(), brokerID, companyID); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, "Broker associated with company", gin.H{
		"brokerId":  brokerID,
		"companyId": companyID,
	})
}

func (h *Handler) Remove(c *gin.Context) {
	brokerID, companyID, ok := h.parsePair(c)
	if !ok {
		return
	}
	if err := h.service.Remove(c.Request.Context(), brokerID, companyID); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) CompaniesForBroker(c *gin.Context) {
	brokerID, ok := parseID(c, "id")
	if !ok {
		h.writeServiceError(c, brokerlinkerrors.ErrInvalidBrokerID)
		return
	}
	resp, err := h.service.CompaniesForBroker(c.Request.Context(), brokerID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, response.NewListMeta(len(resp), ""))
}

func (h *Handler) BrokersForCompany(c *gin.Context) {
	companyID, ok := parseID(c, "id")
	if !ok {
		h.writeServiceError(c, brokerlinkerrors.ErrInvalidCompanyID)
		return
	}
	resp, err := h.service.BrokersForCompany(c.Request.Context(), companyID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, response.NewListMeta(len(resp), ""))
}
