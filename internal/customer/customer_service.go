package customer

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	customererrors "github.com/mmnete/bimasoft-backend/internal/customer/errors"
	"github.com/mmnete/bimasoft-backend/internal/organization"
	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
	"github.com/mmnete/bimasoft-backend/internal/shared/contextutil"
	"github.com/mmnete/bimasoft-backend/internal/shared/sanitize"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

//go:generate mockgen -source=customer_service.go -destination=mock/customer_service_mock.go -package=mock

type Service interface {
	Create(ctx context.Context, req CreateCustomerRequest) (CustomerResponse, error)
	// CreateForOrganization creates the customer and links it to the
	// organization in one transaction.
	CreateForOrganization(ctx context.Context, organizationID int64, req CreateCustomerRequest) (CustomerResponse, error)
	GetAll(ctx context.Context) ([]CustomerResponse, error)
	GetByID(ctx context.Context, id int64) (CustomerResponse, error)
	GetByType(ctx context.Context, customerType string) ([]CustomerResponse, error)
	GetByTin(ctx context.Context, tin string) (CustomerResponse, error)
	Search(ctx context.Context, query string) ([]CustomerResponse, error)
	Update(ctx context.Context, id int64, patch map[string]any) (CustomerResponse, error)
	Delete(ctx context.Context, id int64) error

	GetByOrganization(ctx context.Context, organizationID int64) ([]CustomerResponse, error)
	Link(ctx context.Context, organizationID, customerID int64) error
	Unlink(ctx context.Context, organizationID, customerID int64) error
	GetOrganizations(ctx context.Context, customerID int64) (LinkResponse, error)
}

type Repositories struct {
	Customers   Repository
	Individuals IndividualRepository
	Corporates  CorporateRepository
	Links       LinkRepository
}

type service struct {
	db            *sql.DB
	repos         Repositories
	organizations organization.Repository
	logger        *zap.Logger
}

// NewService expects organizations to be the untyped repository so links
// work for companies and brokers alike.
func NewService(db *sql.DB, repos Repositories, organizations organization.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("customer.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("customer.service")
	}
	return &service{db: db, repos: repos, organizations: organizations, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateCustomerRequest) (CustomerResponse, error) {
	return s.create(ctx, 0, req)
}

func (s *service) CreateForOrganization(ctx context.Context, organizationID int64, req CreateCustomerRequest) (CustomerResponse, error) {
	org, err := s.organizations.FindOne(ctx, organizationID)
	if err != nil {
		return CustomerResponse{}, err
	}
	if org == nil {
		return CustomerResponse{}, customererrors.ErrOrganizationNotFound
	}
	return s.create(ctx, organizationID, req)
}

func (s *service) create(ctx context.Context, organizationID int64, req CreateCustomerRequest) (CustomerResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create customer requested",
		zap.String("request_id", rid),
		zap.String("customer_type", req.CustomerType),
		zap.Int64("organization_id", organizationID),
	)

	if !ValidType(req.CustomerType) {
		return CustomerResponse{}, customererrors.ErrInvalidCustomerType
	}
	nationalID := strings.TrimSpace(deref(req.NationalID))
	if req.CustomerType == TypeIndividual && nationalID == "" {
		return CustomerResponse{}, customererrors.ErrNationalIDRequired
	}

	legalName := sanitize.Text(req.LegalName)
	tin := sanitize.Text(req.TinNumber)
	existing, err := s.repos.Customers.FindDuplicate(ctx, legalName, tin, nationalID, 0)
	if err != nil {
		s.logger.Error("create customer duplicate check failed", zap.String("request_id", rid), zap.Error(err))
		return CustomerResponse{}, err
	}
	if existing != nil {
		s.logger.Warn("create customer duplicate", zap.String("request_id", rid), zap.Int64("conflicting_id", existing.ID))
		return CustomerResponse{}, customererrors.ErrCustomerAlreadyExists
	}

	brela := sanitize.Ptr(req.BrelaRegistrationNumber)
	if req.CustomerType == TypeCorporate && brela != nil && *brela != "" {
		dup, err := s.repos.Corporates.FindByBrela(ctx, *brela, 0)
		if err != nil {
			return CustomerResponse{}, err
		}
		if dup != nil {
			return CustomerResponse{}, customererrors.ErrCorporateAlreadyExists
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create customer begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return CustomerResponse{}, err
	}
	defer tx.Rollback()

	c := &Customer{
		CustomerType:    req.CustomerType,
		LegalName:       legalName,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    sanitize.Ptr(req.ContactPhone),
		PhysicalAddress: datatypes.NewJSONType(organization.SanitizeAddress(req.PhysicalAddress)),
		TinNumber:       &tin,
	}
	if err := s.repos.Customers.WithTx(tx).Create(ctx, c); err != nil {
		s.logger.Error("create customer persist failed", zap.String("request_id", rid), zap.Error(err))
		return CustomerResponse{}, mapRepositoryError(err, customererrors.ErrCustomerNotFound)
	}

	resp := toResponse(*c)
	switch req.CustomerType {
	case TypeIndividual:
		ic := &IndividualCustomer{
			CustomerID:     c.ID,
			NationalID:     &nationalID,
			DriversLicense: sanitize.Ptr(req.DriversLicense),
			PassportNumber: sanitize.Ptr(req.PassportNumber),
			Gender:         sanitize.Ptr(req.Gender),
			MaritalStatus:  sanitize.Ptr(req.MaritalStatus),
		}
		if err := s.repos.Individuals.WithTx(tx).Create(ctx, ic); err != nil {
			s.logger.Error("create individual details failed", zap.String("request_id", rid), zap.Error(err))
			return CustomerResponse{}, mapRepositoryError(err, customererrors.ErrCustomerNotFound)
		}
		detail := toIndividualResponse(*ic)
		resp.Individual = &detail
	case TypeCorporate:
		cc := &CorporateCustomer{
			CustomerID:              c.ID,
			BrelaRegistrationNumber: brela,
			CompanyDetailsURL:       sanitize.Ptr(req.CompanyDetailsURL),
		}
		if err := s.repos.Corporates.WithTx(tx).Create(ctx, cc); err != nil {
			s.logger.Error("create corporate details failed", zap.String("request_id", rid), zap.Error(err))
			return CustomerResponse{}, mapRepositoryError(err, customererrors.ErrCustomerNotFound)
		}
		detail := toCorporateResponse(*cc)
		resp.Corporate = &detail
	}

	if organizationID > 0 {
		if err := s.repos.Links.WithTx(tx).Link(ctx, c.ID, organizationID); err != nil {
			s.logger.Error("link customer failed", zap.String("request_id", rid), zap.Error(err))
			return CustomerResponse{}, mapRepositoryError(err, customererrors.ErrOrganizationNotFound)
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create customer commit failed", zap.String("request_id", rid), zap.Error(err))
		return CustomerResponse{}, err
	}

	s.logger.Info("create customer success", zap.String("request_id", rid), zap.Int64("customer_id", c.ID))
	return resp, nil
}

func (s *service) GetAll(ctx context.Context) ([]CustomerResponse, error) {
	rows, err := s.repos.Customers.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all customers failed", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.Error(err))
		return nil, err
	}
	return toResponses(rows), nil
}

// GetByID includes the individual or corporate details when present.
func (s *service) GetByID(ctx context.Context, id int64) (CustomerResponse, error) {
	c, err := s.repos.Customers.FindOne(ctx, id)
	if err != nil {
		return CustomerResponse{}, err
	}
	if c == nil {
		return CustomerResponse{}, customererrors.ErrCustomerNotFound
	}

	resp := toResponse(*c)
	switch c.CustomerType {
	case TypeIndividual:
		ic, err := s.repos.Individuals.FindByCustomerID(ctx, id)
		if err != nil {
			return CustomerResponse{}, err
		}
		if ic != nil {
			detail := toIndividualResponse(*ic)
			resp.Individual = &detail
		}
	case TypeCorporate:
		cc, err := s.repos.Corporates.FindByCustomerID(ctx, id)
		if err != nil {
			return CustomerResponse{}, err
		}
		if cc != nil {
			detail := toCorporateResponse(*cc)
			resp.Corporate = &detail
		}
	}
	return resp, nil
}

func (s *service) GetByType(ctx context.Context, customerType string) ([]CustomerResponse, error) {
	if !ValidType(customerType) {
		return nil, customererrors.ErrInvalidCustomerType
	}
	rows, err := s.repos.Customers.FindByType(ctx, customerType)
	if err != nil {
		return nil, mapRepositoryError(err, customererrors.ErrCustomerNotFound)
	}
	return toResponses(rows), nil
}

func (s *service) GetByTin(ctx context.Context, tin string) (CustomerResponse, error) {
	c, err := s.repos.Customers.FindByTin(ctx, strings.TrimSpace(tin))
	if err != nil {
		return CustomerResponse{}, err
	}
	if c == nil {
		return CustomerResponse{}, customererrors.ErrCustomerNotFound
	}
	return toResponse(*c), nil
}

func (s *service) Search(ctx context.Context, query string) ([]CustomerResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperror.ErrSearchQueryRequired
	}
	rows, err := s.repos.Customers.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return toResponses(rows), nil
}

func (s *service) Update(ctx context.Context, id int64, patch map[string]any) (CustomerResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update customer requested", zap.String("request_id", rid), zap.Int64("customer_id", id))

	fields := make(map[string]any, len(patch))
	for key, value := range patch {
		switch key {
		case "physicalAddress":
			var addr organization.Address
			if err := reencode(value, &addr); err != nil {
				return CustomerResponse{}, apperror.InvalidField("physicalAddress")
			}
			fields[key] = datatypes.NewJSONType(organization.SanitizeAddress(addr))
		case "customerType":
			t, _ := value.(string)
			if !ValidType(t) {
				return CustomerResponse{}, customererrors.ErrInvalidCustomerType
			}
			fields[key] = t
		default:
			if str, ok := value.(string); ok {
				value = sanitize.Text(str)
			}
			fields[key] = value
		}
	}

	legalName, _ := fields["legalName"].(string)
	tin, _ := fields["tinNumber"].(string)
	if legalName != "" || tin != "" {
		existing, err := s.repos.Customers.FindDuplicate(ctx, legalName, tin, "", id)
		if err != nil {
			s.logger.Error("update customer duplicate check failed", zap.String("request_id", rid), zap.Error(err))
			return CustomerResponse{}, err
		}
		if existing != nil {
			return CustomerResponse{}, customererrors.ErrCustomerAlreadyExists
		}
	}

	c, err := s.repos.Customers.Update(ctx, id, fields)
	if err != nil {
		s.logger.Warn("update customer failed", zap.String("request_id", rid), zap.Error(err))
		return CustomerResponse{}, mapRepositoryError(err, customererrors.ErrCustomerNotFound)
	}
	if c == nil {
		return CustomerResponse{}, customererrors.ErrCustomerNotFound
	}

	s.logger.Info("update customer success", zap.String("request_id", rid), zap.Int64("customer_id", id))
	return toResponse(*c), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	rid := contextutil.GetRequestID(ctx)
	if err := s.repos.Customers.Delete(ctx, id); err != nil {
		s.logger.Error("delete customer failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	s.logger.Info("delete customer success", zap.String("request_id", rid), zap.Int64("customer_id", id))
	return nil
}

func (s *service) GetByOrganization(ctx context.Context, organizationID int64) ([]CustomerResponse, error) {
	rows, err := s.repos.Customers.FindByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	return toResponses(rows), nil
}

func (s *service) Link(ctx context.Context, organizationID, customerID int64) error {
	rid := contextutil.GetRequestID(ctx)
	c, err := s.repos.Customers.FindOne(ctx, customerID)
	if err != nil {
		return err
	}
	if c == nil {
		return customererrors.ErrCustomerNotFound
	}
	org, err := s.organizations.FindOne(ctx, organizationID)
	if err != nil {
		return err
	}
	if org == nil {
		return customererrors.ErrOrganizationNotFound
	}

	if err := s.repos.Links.Link(ctx, customerID, organizationID); err != nil {
		s.logger.Error("link customer failed", zap.String("request_id", rid), zap.Error(err))
		return mapRepositoryError(err, customererrors.ErrOrganizationNotFound)
	}
	s.logger.Info("link customer success",
		zap.String("request_id", rid),
		zap.Int64("customer_id", customerID),
		zap.Int64("organization_id", organizationID),
	)
	return nil
}

func (s *service) Unlink(ctx context.Context, organizationID, customerID int64) error {
	removed, err := s.repos.Links.Unlink(ctx, customerID, organizationID)
	if err != nil {
		return err
	}
	if !removed {
		return customererrors.ErrLinkNotFound
	}
	return nil
}

func (s *service) GetOrganizations(ctx context.Context, customerID int64) (LinkResponse, error) {
	ids, err := s.repos.Links.FindOrganizations(ctx, customerID)
	if err != nil {
		return LinkResponse{}, err
	}
	return LinkResponse{CustomerID: customerID, OrganizationIDs: ids}, nil
}

func reencode(value any, dst any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
