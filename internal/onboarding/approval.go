package onboarding

import (
	"context"
	"crypto/subtle"

	onboardingerrors "github.com/mmnete/bimasoft-backend/internal/onboarding/errors"
	"github.com/mmnete/bimasoft-backend/internal/organization"
	organizationerrors "github.com/mmnete/bimasoft-backend/internal/organization/errors"
	"github.com/mmnete/bimasoft-backend/internal/shared/contextutil"
	"go.uber.org/zap"
)

type approver struct {
	devPass string
	repos   map[string]organization.Repository
	logger  *zap.Logger
}

// NewApprover gates approval behind a shared secret. repos maps each
// organization type, plus "" for any type, to its repository.
func NewApprover(devPass string, repos map[string]organization.Repository, logger ...*zap.Logger) Approver {
	l := zap.L().Named("onboarding.approver")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("onboarding.approver")
	}
	return &approver{devPass: devPass, repos: repos, logger: l}
}

// Approve has no state guard: approving an approved organization succeeds.
func (a *approver) Approve(ctx context.Context, orgType string, id int64, secret string) (organization.OrganizationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if secret == "" || a.devPass == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(a.devPass)) != 1 {
		a.logger.Warn("approval rejected", zap.String("request_id", rid), zap.Int64("organization_id", id))
		return organization.OrganizationResponse{}, onboardingerrors.ErrIncorrectDevPassword
	}

	repo, ok := a.repos[orgType]
	if !ok {
		return organization.OrganizationResponse{}, organizationerrors.NotFound(orgType)
	}
	org, err := repo.Approve(ctx, id)
	if err != nil {
		a.logger.Error("approval failed", zap.String("request_id", rid), zap.Error(err))
		return organization.OrganizationResponse{}, err
	}
	if org == nil {
		return organization.OrganizationResponse{}, organizationerrors.NotFound(orgType)
	}

	a.logger.Info("organization approved", zap.String("request_id", rid), zap.Int64("organization_id", id))
	return organization.ToResponse(*org), nil
}
