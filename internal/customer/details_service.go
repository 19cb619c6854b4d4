package customer

import (
	"context"
	"strings"

	customererrors "github.com/mmnete/bimasoft-backend/internal/customer/errors"
	"github.com/mmnete/bimasoft-backend/internal/shared/contextutil"
	"github.com/mmnete/bimasoft-backend/internal/shared/sanitize"
	"go.uber.org/zap"
)

//go:generate mockgen -source=details_service.go -destination=mock/details_service_mock.go -package=mock

type IndividualService interface {
	Create(ctx context.Context, req CreateIndividualRequest) (IndividualResponse, error)
	GetAll(ctx context.Context) ([]IndividualResponse, error)
	GetByID(ctx context.Context, id int64) (IndividualResponse, error)
	GetByNationalID(ctx context.Context, nationalID string) (IndividualResponse, error)
	Update(ctx context.Context, id int64, patch map[string]any) (IndividualResponse, error)
	Delete(ctx context.Context, id int64) error
}

type CorporateService interface {
	Create(ctx context.Context, req CreateCorporateRequest) (CorporateResponse, error)
	GetAll(ctx context.Context) ([]CorporateResponse, error)
	GetByID(ctx context.Context, id int64) (CorporateResponse, error)
	GetByBrela(ctx context.Context, brela string) (CorporateResponse, error)
	Update(ctx context.Context, id int64, patch map[string]any) (CorporateResponse, error)
	Delete(ctx context.Context, id int64) error
}

type individualService struct {
	customers Repository
	repo      IndividualRepository
	logger    *zap.Logger
}

func NewIndividualService(customers Repository, repo IndividualRepository, logger ...*zap.Logger) IndividualService {
	l := zap.L().Named("customer.individual_service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("customer.individual_service")
	}
	return &individualService{customers: customers, repo: repo, logger: l}
}

func (s *individualService) Create(ctx context.Context, req CreateIndividualRequest) (IndividualResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	nationalID := sanitize.Text(req.NationalID)

	c, err := s.customers.FindOne(ctx, req.CustomerID)
	if err != nil {
		return IndividualResponse{}, err
	}
	if c == nil {
		return IndividualResponse{}, customererrors.ErrCustomerNotFound
	}

	dup, err := s.repo.FindByNationalID(ctx, nationalID, 0)
	if err != nil {
		return IndividualResponse{}, err
	}
	if dup != nil {
		s.logger.Warn("create individual duplicate", zap.String("request_id", rid), zap.Int64("conflicting_id", dup.ID))
		return IndividualResponse{}, customererrors.ErrIndividualAlreadyExists
	}

	ic := &IndividualCustomer{
		CustomerID:     req.CustomerID,
		NationalID:     &nationalID,
		DriversLicense: sanitize.Ptr(req.DriversLicense),
		PassportNumber: sanitize.Ptr(req.PassportNumber),
		Gender:         sanitize.Ptr(req.Gender),
		MaritalStatus:  sanitize.Ptr(req.MaritalStatus),
	}
	if err := s.repo.Create(ctx, ic); err != nil {
		s.logger.Error("create individual persist failed", zap.String("request_id", rid), zap.Error(err))
		return IndividualResponse{}, mapRepositoryError(err, customererrors.ErrCustomerNotFound)
	}

	s.logger.Info("create individual success", zap.String("request_id", rid), zap.Int64("individual_id", ic.ID))
	return toIndividualResponse(*ic), nil
}

func (s *individualService) GetAll(ctx context.Context) ([]IndividualResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]IndividualResponse, 0, len(rows))
	for _, ic := range rows {
		out = append(out, toIndividualResponse(ic))
	}
	return out, nil
}

func (s *individualService) GetByID(ctx context.Context, id int64) (IndividualResponse, error) {
	ic, err := s.repo.FindOne(ctx, id)
	if err != nil {
		return IndividualResponse{}, err
	}
	if ic == nil {
		return IndividualResponse{}, customererrors.ErrIndividualNotFound
	}
	return toIndividualResponse(*ic), nil
}

func (s *individualService) GetByNationalID(ctx context.Context, nationalID string) (IndividualResponse, error) {
	ic, err := s.repo.FindByNationalID(ctx, strings.TrimSpace(nationalID), 0)
	if err != nil {
		return IndividualResponse{}, err
	}
	if ic == nil {
		return IndividualResponse{}, customererrors.ErrIndividualNotFound
	}
	return toIndividualResponse(*ic), nil
}

func (s *individualService) Update(ctx context.Context, id int64, patch map[string]any) (IndividualResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	fields := sanitizePatch(patch)

	if nationalID, ok := fields["nationalId"].(string); ok && nationalID != "" {
		dup, err := s.repo.FindByNationalID(ctx, nationalID, id)
		if err != nil {
			return IndividualResponse{}, err
		}
		if dup != nil {
			return IndividualResponse{}, customererrors.ErrIndividualAlreadyExists
		}
	}

	ic, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		s.logger.Warn("update individual failed", zap.String("request_id", rid), zap.Error(err))
		return IndividualResponse{}, mapRepositoryError(err, customererrors.ErrIndividualNotFound)
	}
	if ic == nil {
		return IndividualResponse{}, customererrors.ErrIndividualNotFound
	}
	return toIndividualResponse(*ic), nil
}

func (s *individualService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete individual failed", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.Error(err))
		return err
	}
	return nil
}

type corporateService struct {
	customers Repository
	repo      CorporateRepository
	logger    *zap.Logger
}

func NewCorporateService(customers Repository, repo CorporateRepository, logger ...*zap.Logger) CorporateService {
	l := zap.L().Named("customer.corporate_service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("customer.corporate_service")
	}
	return &corporateService{customers: customers, repo: repo, logger: l}
}

func (s *corporateService) Create(ctx context.Context, req CreateCorporateRequest) (CorporateResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	brela := sanitize.Text(req.BrelaRegistrationNumber)

	c, err := s.customers.FindOne(ctx, req.CustomerID)
	if err != nil {
		return CorporateResponse{}, err
	}
	if c == nil {
		return CorporateResponse{}, customererrors.ErrCustomerNotFound
	}

	dup, err := s.repo.FindByBrela(ctx, brela, 0)
	if err != nil {
		return CorporateResponse{}, err
	}
	if dup != nil {
		s.logger.Warn("create corporate duplicate", zap.String("request_id", rid), zap.Int64("conflicting_id", dup.ID))
		return CorporateResponse{}, customererrors.ErrCorporateAlreadyExists
	}

	cc := &CorporateCustomer{
		CustomerID:              req.CustomerID,
		BrelaRegistrationNumber: &brela,
		CompanyDetailsURL:       sanitize.Ptr(req.CompanyDetailsURL),
	}
	if err := s.repo.Create(ctx, cc); err != nil {
		s.logger.Error("create corporate persist failed", zap.String("request_id", rid), zap.Error(err))
		return CorporateResponse{}, mapRepositoryError(err, customererrors.ErrCustomerNotFound)
	}

	s.logger.Info("create corporate success", zap.String("request_id", rid), zap.Int64("corporate_id", cc.ID))
	return toCorporateResponse(*cc), nil
}

func (s *corporateService) GetAll(ctx context.Context) ([]CorporateResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CorporateResponse, 0, len(rows))
	for _, cc := range rows {
		out = append(out, toCorporateResponse(cc))
	}
	return out, nil
}

func (s *corporateService) GetByID(ctx context.Context, id int64) (CorporateResponse, error) {
	cc, err := s.repo.FindOne(ctx, id)
	if err != nil {
		return CorporateResponse{}, err
	}
	if cc == nil {
		return CorporateResponse{}, customererrors.ErrCorporateNotFound
	}
	return toCorporateResponse(*cc), nil
}

func (s *corporateService) GetByBrela(ctx context.Context, brela string) (CorporateResponse, error) {
	cc, err := s.repo.FindByBrela(ctx, strings.TrimSpace(brela), 0)
	if err != nil {
		return CorporateResponse{}, err
	}
	if cc == nil {
		return CorporateResponse{}, customererrors.ErrCorporateNotFound
	}
	return toCorporateResponse(*cc), nil
}

func (s *corporateService) Update(ctx context.Context, id int64, patch map[string]any) (CorporateResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	fields := sanitizePatch(patch)

	if brela, ok := fields["brelaRegistrationNumber"].(string); ok && brela != "" {
		dup, err := s.repo.FindByBrela(ctx, brela, id)
		if err != nil {
			return CorporateResponse{}, err
		}
		if dup != nil {
			return CorporateResponse{}, customererrors.ErrCorporateAlreadyExists
		}
	}

	cc, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		s.logger.Warn("update corporate failed", zap.String("request_id", rid), zap.Error(err))
		return CorporateResponse{}, mapRepositoryError(err, customererrors.ErrCorporateNotFound)
	}
	if cc == nil {
		return CorporateResponse{}, customererrors.ErrCorporateNotFound
	}
	return toCorporateResponse(*cc), nil
}

func (s *corporateService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete corporate failed", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.Error(err))
		return err
	}
	return nil
}

func sanitizePatch(patch map[string]any) map[string]any {
	out := make(map[string]any, len(patch))
	for k, v := range patch {
		if str, ok := v.(string); ok {
			v = sanitize.Text(str)
		}
		out[k] = v
	}
	return out
}
