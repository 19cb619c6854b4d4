package brokerlink

import (
	"context"

	brokerlinkerrors "github.com/mmnete/bimasoft-backend/internal/brokerlink/errors"
	"github.com/mmnete/bimasoft-backend/internal/organization"
	organizationerrors "github.com/mmnete/bimasoft-backend/internal/organization/errors"
	"github.com/mmnete/bimasoft-backend/internal/shared/contextutil"
	"go.uber.org/zap"
)

//go:generate mockgen -source=brokerlink_service.go -destination=mock/brokerlink_service_mock.go -package=mock

type Service interface {
	Add(ctx context.Context, brokerID, companyID int64) error
	Remove(ctx context.Context, brokerID, companyID int64) error
	CompaniesForBroker(ctx context.Context, brokerID int64) ([]organization.OrganizationResponse, error)
	BrokersForCompany(ctx context.Context, companyID int64) ([]organization.OrganizationResponse, error)
}

type service struct {
	repo      Repository
	brokers   organization.Repository
	companies organization.Repository
	logger    *zap.Logger
}

// NewService takes the broker and company scoped organization repositories.
func NewService(repo Repository, brokers, companies organization.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("brokerlink.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("brokerlink.service")
	}
	return &service{repo: repo, brokers: brokers, companies: companies, logger: l}
}

func (s *service) requireBroker(ctx context.Context, id int64) error {
	b, err := s.brokers.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return organizationerrors.ErrBrokerNotFound
	}
	return nil
}

func (s *service) requireCompany(ctx context.Context, id int64) error {
	c, err := s.companies.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return organizationerrors.ErrCompanyNotFound
	}
	return nil
}

func (s *service) Add(ctx context.Context, brokerID, companyID int64) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("link broker requested",
		zap.String("request_id", rid),
		zap.Int64("broker_id", brokerID),
		zap.Int64("company_id", companyID),
	)

	if err := s.requireBroker(ctx, brokerID); err != nil {
		return err
	}
	if err := s.requireCompany(ctx, companyID); err != nil {
		return err
	}

	rel, err := s.repo.FindRelation(ctx, brokerID, companyID)
	if err != nil {
		return err
	}
	if rel != nil {
		return brokerlinkerrors.ErrAlreadyAssociated
	}

	if err := s.repo.Add(ctx, brokerID, companyID); err != nil {
		s.logger.Error("link broker failed", zap.String("request_id", rid), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("link broker success",
		zap.String("request_id", rid),
		zap.Int64("broker_id", brokerID),
		zap.Int64("company_id", companyID),
	)
	return nil
}

func (s *service) Remove(ctx context.Context, brokerID, companyID int64) error {
	rid := contextutil.GetRequestID(ctx)
	removed, err := s.repo.Remove(ctx, brokerID, companyID)
	if err != nil {
		s.logger.Error("unlink broker failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	if !removed {
		return brokerlinkerrors.ErrNotAssociated
	}
	s.logger.Info("unlink broker success",
		zap.String("request_id", rid),
		zap.Int64("broker_id", brokerID),
		zap.Int64("company_id", companyID),
	)
	return nil
}

func (s *service) CompaniesForBroker(ctx context.Context, brokerID int64) ([]organization.OrganizationResponse, error) {
	if err := s.requireBroker(ctx, brokerID); err != nil {
		return nil, err
	}
	rows, err := s.repo.FindCompaniesForBroker(ctx, brokerID)
	if err != nil {
		return nil, err
	}
	return toResponses(rows), nil
}

func (s *service) BrokersForCompany(ctx context.Context, companyID int64) ([]organization.OrganizationResponse, error) {
	if err := s.requireCompany(ctx, companyID); err != nil {
		return nil, err
	}
	rows, err := s.repo.FindBrokersForCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return toResponses(rows), nil
}

func toResponses(rows []organization.Organization) []organization.OrganizationResponse {
	out := make([]organization.OrganizationResponse, 0, len(rows))
	for _, o := range rows {
		out = append(out, organization.ToResponse(o))
	}
	return out
}
