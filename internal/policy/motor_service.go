package policy

import (
	"context"
	"strings"

	policyerrors "github.com/mmnete/bimasoft-backend/internal/policy/errors"
	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
	"github.com/mmnete/bimasoft-backend/internal/shared/contextutil"
	"github.com/mmnete/bimasoft-backend/internal/shared/sanitize"
	"go.uber.org/zap"
)

//go:generate mockgen -source=motor_service.go -destination=mock/motor_service_mock.go -package=mock

type MotorService interface {
	Create(ctx context.Context, req CreateMotorPolicyRequest) (MotorPolicyResponse, error)
	GetAll(ctx context.Context) ([]MotorPolicyResponse, error)
	GetByID(ctx context.Context, id int64) (MotorPolicyResponse, error)
	GetByPolicyID(ctx context.Context, policyID int64) (MotorPolicyResponse, error)
	Search(ctx context.Context, query string) ([]MotorPolicyResponse, error)
	Update(ctx context.Context, id int64, patch map[string]any) (MotorPolicyResponse, error)
	Delete(ctx context.Context, id int64) error
}

type motorService struct {
	policies Repository
	repo     MotorRepository
	logger   *zap.Logger
}

func NewMotorService(policies Repository, repo MotorRepository, logger ...*zap.Logger) MotorService {
	l := zap.L().Named("policy.motor_service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("policy.motor_service")
	}
	return &motorService{policies: policies, repo: repo, logger: l}
}

func newMotorPolicy(policyID int64, d MotorDetailsRequest) *MotorPolicy {
	return &MotorPolicy{
		PolicyID:                  policyID,
		VehicleRegistrationNumber: strings.ToUpper(sanitize.Text(d.VehicleRegistrationNumber)),
		Make:                      sanitize.Text(d.Make),
		Model:                     sanitize.Text(d.Model),
		YearOfManufacture:         d.YearOfManufacture,
		ChassisNumber:             sanitize.Ptr(d.ChassisNumber),
		EngineNumber:              sanitize.Ptr(d.EngineNumber),
	}
}

func (s *motorService) Create(ctx context.Context, req CreateMotorPolicyRequest) (MotorPolicyResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	p, err := s.policies.FindOne(ctx, req.PolicyID)
	if err != nil {
		return MotorPolicyResponse{}, err
	}
	if p == nil {
		return MotorPolicyResponse{}, policyerrors.ErrPolicyNotFound
	}
	existing, err := s.repo.FindByPolicyID(ctx, req.PolicyID)
	if err != nil {
		return MotorPolicyResponse{}, err
	}
	if existing != nil {
		s.logger.Warn("create motor policy duplicate", zap.String("request_id", rid), zap.Int64("policy_id", req.PolicyID))
		return MotorPolicyResponse{}, policyerrors.ErrMotorPolicyAlreadyExists
	}

	m := newMotorPolicy(req.PolicyID, req.MotorDetailsRequest)
	if err := s.repo.Create(ctx, m); err != nil {
		s.logger.Error("create motor policy persist failed", zap.String("request_id", rid), zap.Error(err))
		return MotorPolicyResponse{}, mapRepositoryError(err, policyerrors.ErrPolicyNotFound)
	}

	s.logger.Info("create motor policy success", zap.String("request_id", rid), zap.Int64("motor_policy_id", m.ID))
	return toMotorResponse(*m), nil
}

func (s *motorService) GetAll(ctx context.Context) ([]MotorPolicyResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toMotorResponses(rows), nil
}

func (s *motorService) GetByID(ctx context.Context, id int64) (MotorPolicyResponse, error) {
	m, err := s.repo.FindOne(ctx, id)
	if err != nil {
		return MotorPolicyResponse{}, err
	}
	if m == nil {
		return MotorPolicyResponse{}, policyerrors.ErrMotorPolicyNotFound
	}
	return toMotorResponse(*m), nil
}

func (s *motorService) GetByPolicyID(ctx context.Context, policyID int64) (MotorPolicyResponse, error) {
	m, err := s.repo.FindByPolicyID(ctx, policyID)
	if err != nil {
		return MotorPolicyResponse{}, err
	}
	if m == nil {
		return MotorPolicyResponse{}, policyerrors.ErrMotorPolicyNotFound
	}
	return toMotorResponse(*m), nil
}

func (s *motorService) Search(ctx context.Context, query string) ([]MotorPolicyResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperror.ErrSearchQueryRequired
	}
	rows, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return toMotorResponses(rows), nil
}

func (s *motorService) Update(ctx context.Context, id int64, patch map[string]any) (MotorPolicyResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if len(patch) == 0 {
		return MotorPolicyResponse{}, policyerrors.ErrNoFieldsToUpdate
	}
	fields := make(map[string]any, len(patch))
	for k, v := range patch {
		if str, ok := v.(string); ok {
			v = sanitize.Text(str)
		}
		fields[k] = v
	}

	// policyId is unique per motor row.
	if raw, ok := fields["policyId"].(float64); ok {
		existing, err := s.repo.FindByPolicyID(ctx, int64(raw))
		if err != nil {
			return MotorPolicyResponse{}, err
		}
		if existing != nil && existing.ID != id {
			return MotorPolicyResponse{}, policyerrors.ErrMotorPolicyAlreadyExists
		}
	}

	m, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		s.logger.Warn("update motor policy failed", zap.String("request_id", rid), zap.Error(err))
		return MotorPolicyResponse{}, mapRepositoryError(err, policyerrors.ErrMotorPolicyNotFound)
	}
	if m == nil {
		return MotorPolicyResponse{}, policyerrors.ErrMotorPolicyNotFound
	}
	return toMotorResponse(*m), nil
}

func (s *motorService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete motor policy failed", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.Error(err))
		return err
	}
	return nil
}
