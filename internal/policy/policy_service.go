package policy

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/mmnete/bimasoft-backend/internal/customer"
	policyerrors "github.com/mmnete/bimasoft-backend/internal/policy/errors"
	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
	"github.com/mmnete/bimasoft-backend/internal/shared/contextutil"
	"github.com/mmnete/bimasoft-backend/internal/shared/counter"
	"github.com/mmnete/bimasoft-backend/internal/shared/sanitize"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

//go:generate mockgen -source=policy_service.go -destination=mock/policy_service_mock.go -package=mock

type Service interface {
	Create(ctx context.Context, req CreatePolicyRequest) (PolicyResponse, error)
	GetAll(ctx context.Context) ([]PolicyResponse, error)
	GetByID(ctx context.Context, id int64) (PolicyResponse, error)
	GetByCustomer(ctx context.Context, customerID int64) ([]PolicyResponse, error)
	GetByEntity(ctx context.Context, entityID int64, entityType string) ([]PolicyResponse, error)
	GetByStatus(ctx context.Context, status string) ([]PolicyResponse, error)
	GetByPolicyNumber(ctx context.Context, number string) (PolicyResponse, error)
	Search(ctx context.Context, query string) ([]PolicyResponse, error)
	Update(ctx context.Context, id int64, patch map[string]any) (PolicyResponse, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	motor     MotorRepository
	counters  counter.Repository
	customers customer.Repository
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, motor MotorRepository, counters counter.Repository, customers customer.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("policy.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("policy.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		motor:     motor,
		counters:  counters,
		customers: customers,
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, req CreatePolicyRequest) (PolicyResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create policy requested",
		zap.String("request_id", rid),
		zap.Int64("customer_id", req.CustomerID),
		zap.Int64("insurance_entity_id", req.InsuranceEntityID),
	)

	start, err := parseDate(req.StartDate)
	if err != nil {
		return PolicyResponse{}, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return PolicyResponse{}, err
	}
	if time.Time(end).Before(time.Time(start)) {
		return PolicyResponse{}, policyerrors.ErrEndBeforeStart
	}

	c, err := s.customers.FindOne(ctx, req.CustomerID)
	if err != nil {
		return PolicyResponse{}, err
	}
	if c == nil {
		return PolicyResponse{}, policyerrors.ErrCustomerNotFound
	}

	number := sanitize.Text(req.PolicyNumber)
	if number != "" {
		existing, err := s.repo.FindByPolicyNumber(ctx, number, 0)
		if err != nil {
			return PolicyResponse{}, err
		}
		if existing != nil {
			s.logger.Warn("create policy duplicate number", zap.String("request_id", rid), zap.String("policy_number", number))
			return PolicyResponse{}, policyerrors.ErrPolicyAlreadyExists
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create policy begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return PolicyResponse{}, err
	}
	defer tx.Rollback()

	if number == "" {
		seq, err := s.counters.WithTx(tx).NextValue(ctx, req.InsuranceEntityID, counterPrefix+req.EntityType)
		if err != nil {
			s.logger.Error("policy number generation failed", zap.String("request_id", rid), zap.Error(err))
			return PolicyResponse{}, err
		}
		number = FormatNumber(req.EntityType, req.InsuranceEntityID, seq)
	}

	status := sanitize.Text(req.Status)
	if status == "" {
		status = StatusActive
	}
	p := &Policy{
		PolicyNumber:      number,
		CustomerID:        req.CustomerID,
		InsuranceEntityID: req.InsuranceEntityID,
		EntityType:        req.EntityType,
		PolicyType:        sanitize.Text(req.PolicyType),
		StartDate:         start,
		EndDate:           end,
		PremiumAmount:     req.PremiumAmount,
		Status:            status,
	}
	if err := s.repo.WithTx(tx).Create(ctx, p); err != nil {
		s.logger.Error("create policy persist failed", zap.String("request_id", rid), zap.Error(err))
		return PolicyResponse{}, mapRepositoryError(err, policyerrors.ErrPolicyNotFound)
	}

	resp := toResponse(*p)
	if req.Motor != nil {
		m := newMotorPolicy(p.ID, *req.Motor)
		if err := s.motor.WithTx(tx).Create(ctx, m); err != nil {
			s.logger.Error("create motor details failed", zap.String("request_id", rid), zap.Error(err))
			return PolicyResponse{}, mapRepositoryError(err, policyerrors.ErrPolicyNotFound)
		}
		motor := toMotorResponse(*m)
		resp.Motor = &motor
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create policy commit failed", zap.String("request_id", rid), zap.Error(err))
		return PolicyResponse{}, err
	}

	s.logger.Info("create policy success",
		zap.String("request_id", rid),
		zap.Int64("policy_id", p.ID),
		zap.String("policy_number", p.PolicyNumber),
	)
	return resp, nil
}

func (s *service) GetAll(ctx context.Context) ([]PolicyResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all policies failed", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.Error(err))
		return nil, err
	}
	return toResponses(rows), nil
}

// GetByID attaches the motor details when the policy has them.
func (s *service) GetByID(ctx context.Context, id int64) (PolicyResponse, error) {
	p, err := s.repo.FindOne(ctx, id)
	if err != nil {
		return PolicyResponse{}, err
	}
	if p == nil {
		return PolicyResponse{}, policyerrors.ErrPolicyNotFound
	}

	resp := toResponse(*p)
	m, err := s.motor.FindByPolicyID(ctx, id)
	if err != nil {
		return PolicyResponse{}, err
	}
	if m != nil {
		motor := toMotorResponse(*m)
		resp.Motor = &motor
	}
	return resp, nil
}

func (s *service) GetByCustomer(ctx context.Context, customerID int64) ([]PolicyResponse, error) {
	rows, err := s.repo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, mapRepositoryError(err, policyerrors.ErrPolicyNotFound)
	}
	return toResponses(rows), nil
}

func (s *service) GetByEntity(ctx context.Context, entityID int64, entityType string) ([]PolicyResponse, error) {
	rows, err := s.repo.FindByEntity(ctx, entityID, entityType)
	if err != nil {
		return nil, err
	}
	return toResponses(rows), nil
}

func (s *service) GetByStatus(ctx context.Context, status string) ([]PolicyResponse, error) {
	rows, err := s.repo.FindByStatus(ctx, status)
	if err != nil {
		return nil, mapRepositoryError(err, policyerrors.ErrPolicyNotFound)
	}
	return toResponses(rows), nil
}

func (s *service) GetByPolicyNumber(ctx context.Context, number string) (PolicyResponse, error) {
	p, err := s.repo.FindByPolicyNumber(ctx, strings.TrimSpace(number), 0)
	if err != nil {
		return PolicyResponse{}, err
	}
	if p == nil {
		return PolicyResponse{}, policyerrors.ErrPolicyNotFound
	}
	return toResponse(*p), nil
}

func (s *service) Search(ctx context.Context, query string) ([]PolicyResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperror.ErrSearchQueryRequired
	}
	rows, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return toResponses(rows), nil
}

func (s *service) Update(ctx context.Context, id int64, patch map[string]any) (PolicyResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update policy requested", zap.String("request_id", rid), zap.Int64("policy_id", id))

	if len(patch) == 0 {
		return PolicyResponse{}, policyerrors.ErrNoFieldsToUpdate
	}
	fields := make(map[string]any, len(patch))
	for key, value := range patch {
		switch key {
		case "startDate", "endDate":
			str, _ := value.(string)
			d, err := parseDate(str)
			if err != nil {
				return PolicyResponse{}, err
			}
			fields[key] = d
		default:
			if str, ok := value.(string); ok {
				value = sanitize.Text(str)
			}
			fields[key] = value
		}
	}

	if err := s.checkPeriod(ctx, id, fields); err != nil {
		return PolicyResponse{}, err
	}

	if number, ok := fields["policyNumber"].(string); ok && number != "" {
		existing, err := s.repo.FindByPolicyNumber(ctx, number, id)
		if err != nil {
			return PolicyResponse{}, err
		}
		if existing != nil {
			return PolicyResponse{}, policyerrors.ErrPolicyAlreadyExists
		}
	}

	p, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		s.logger.Warn("update policy failed", zap.String("request_id", rid), zap.Error(err))
		return PolicyResponse{}, mapRepositoryError(err, policyerrors.ErrPolicyNotFound)
	}
	if p == nil {
		return PolicyResponse{}, policyerrors.ErrPolicyNotFound
	}

	s.logger.Info("update policy success", zap.String("request_id", rid), zap.Int64("policy_id", id))
	return toResponse(*p), nil
}

// checkPeriod keeps endDate on or after startDate when a patch moves only
// one of them; the other comes from the stored row.
func (s *service) checkPeriod(ctx context.Context, id int64, fields map[string]any) error {
	start, hasStart := fields["startDate"].(datatypes.Date)
	end, hasEnd := fields["endDate"].(datatypes.Date)
	if !hasStart && !hasEnd {
		return nil
	}
	if !hasStart || !hasEnd {
		current, err := s.repo.FindOne(ctx, id)
		if err != nil {
			return mapRepositoryError(err, policyerrors.ErrPolicyNotFound)
		}
		if current == nil {
			return policyerrors.ErrPolicyNotFound
		}
		if !hasStart {
			start = current.StartDate
		}
		if !hasEnd {
			end = current.EndDate
		}
	}
	if time.Time(end).Before(time.Time(start)) {
		return policyerrors.ErrEndBeforeStart
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	rid := contextutil.GetRequestID(ctx)
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete policy failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	s.logger.Info("delete policy success", zap.String("request_id", rid), zap.Int64("policy_id", id))
	return nil
}
