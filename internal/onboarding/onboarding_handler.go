package onboarding

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	onboardingerrors "github.com/mmnete/bimasoft-backend/internal/onboarding/errors"
	"github.com/mmnete/bimasoft-backend/internal/organization"
	organizationerrors "github.com/mmnete/bimasoft-backend/internal/organization/errors"
	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
	"github.com/mmnete/bimasoft-backend/internal/shared/requestmeta"
	"github.com/mmnete/bimasoft-backend/internal/shared/response"
	"go.uber.org/zap"
)

type Handler struct {
	onboarder Onboarder
	approver  Approver
	logger    *zap.Logger
}

func NewHandler(onboarder Onboarder, approver Approver, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("onboarding.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("onboarding.handler")
	}
	return &Handler{onboarder: onboarder, approver: approver, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("onboarding request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Create returns the onboarding handler for orgType; the type comes from
// the route, never from the body.
func (h *Handler) Create(orgType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body CreateOrganizationRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			h.logger.Warn("http onboarding validation failed", zap.Error(err))
			h.writeServiceError(c, apperror.MapValidationError(err))
			return
		}

		req, err := body.toRequest(requestmeta.FromRequest(c.Request))
		if err != nil {
			h.writeServiceError(c, err)
			return
		}

		result, err := h.onboarder.Onboard(c.Request.Context(), orgType, req)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusCreated, result, nil)
	}
}

// Approve handles the per-type shortcut where the id is in the path.
func (h *Handler) Approve(orgType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := organization.ParseID(c, "id")
		if !ok {
			h.writeServiceError(c, organizationerrors.ErrInvalidOrganizationID)
			return
		}
		var body ApproveRequest
		_ = c.ShouldBindJSON(&body)
		h.approve(c, orgType, id, body.DevPassword)
	}
}

// ApproveByBody handles POST /insurance/organizations/approve.
func (h *Handler) ApproveByBody(c *gin.Context) {
	var body ApproveRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	if body.OrganizationID <= 0 {
		h.writeServiceError(c, onboardingerrors.ErrOrganizationIDRequired)
		return
	}
	h.approve(c, "", body.OrganizationID, body.DevPassword)
}

func (h *Handler) approve(c *gin.Context, orgType string, id int64, secret string) {
	resp, err := h.approver.Approve(c.Request.Context(), orgType, id, secret)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, fmt.Sprintf("Organization with ID %d has been approved.", id), resp)
}
