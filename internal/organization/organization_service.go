package organization

import (
	"context"
	"encoding/json"
	"strings"

	organizationerrors "github.com/mmnete/bimasoft-backend/internal/organization/errors"
	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
	"github.com/mmnete/bimasoft-backend/internal/shared/contextutil"
	"github.com/mmnete/bimasoft-backend/internal/shared/sanitize"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

//go:generate mockgen -source=organization_service.go -destination=mock/organization_service_mock.go -package=mock
type Service interface {
	Type() string
	GetAll(ctx context.Context) ([]OrganizationResponse, error)
	GetByID(ctx context.Context, id int64) (OrganizationResponse, error)
	Search(ctx context.Context, query string) ([]OrganizationResponse, error)
	GetPending(ctx context.Context) ([]PendingOrganizationResponse, error)
	Update(ctx context.Context, id int64, patch map[string]any) (OrganizationResponse, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	orgType string
	repo    Repository
	all     Repository
	logger  *zap.Logger
}

// NewService builds the read and maintenance service for one organization
// type. repo must be scoped to the same type; all spans every type and backs
// the uniqueness check, since the unique columns are shared across types.
func NewService(orgType string, repo, all Repository, logger ...*zap.Logger) Service {
	name := Label(orgType) + ".service"
	l := zap.L().Named(name)
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named(name)
	}
	return &service{orgType: orgType, repo: repo, all: all, logger: l}
}

func (s *service) Type() string {
	return s.orgType
}

func (s *service) GetAll(ctx context.Context) ([]OrganizationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("get all organizations", zap.String("request_id", rid), zap.String("type", s.orgType))

	orgs, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all organizations failed", zap.String("request_id", rid), zap.Error(err))
		return nil, err
	}
	return toResponses(orgs), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (OrganizationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("get organization by id", zap.String("request_id", rid), zap.Int64("organization_id", id))

	org, err := s.repo.FindOne(ctx, id)
	if err != nil {
		s.logger.Error("get organization failed", zap.String("request_id", rid), zap.Error(err))
		return OrganizationResponse{}, MapRepositoryError(s.orgType, err)
	}
	if org == nil {
		return OrganizationResponse{}, organizationerrors.NotFound(s.orgType)
	}
	return ToResponse(*org), nil
}

func (s *service) Search(ctx context.Context, query string) ([]OrganizationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperror.ErrSearchQueryRequired
	}
	s.logger.Debug("search organizations", zap.String("request_id", rid), zap.String("query", query))

	orgs, err := s.repo.Search(ctx, query)
	if err != nil {
		s.logger.Error("search organizations failed", zap.String("request_id", rid), zap.Error(err))
		return nil, err
	}
	return toResponses(orgs), nil
}

func (s *service) GetPending(ctx context.Context) ([]PendingOrganizationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("get pending organizations", zap.String("request_id", rid), zap.String("type", s.orgType))

	rows, err := s.repo.FindPending(ctx)
	if err != nil {
		s.logger.Error("get pending organizations failed", zap.String("request_id", rid), zap.Error(err))
		return nil, err
	}
	out := make([]PendingOrganizationResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toPendingResponse(r))
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, id int64, patch map[string]any) (OrganizationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update organization",
		zap.String("request_id", rid),
		zap.Int64("organization_id", id),
		zap.Int("fields", len(patch)),
	)

	fields, err := normalizePatch(patch)
	if err != nil {
		return OrganizationResponse{}, err
	}

	if candidate, ok := uniqueCandidate(fields); ok {
		existing, err := s.all.FindByUniqueFields(ctx, candidate.Columns(), id)
		if err != nil {
			s.logger.Error("update organization uniqueness check failed", zap.String("request_id", rid), zap.Error(err))
			return OrganizationResponse{}, err
		}
		if existing != nil {
			s.logger.Warn("update organization duplicate",
				zap.String("request_id", rid),
				zap.Int64("organization_id", id),
				zap.Int64("conflicting_id", existing.ID),
			)
			return OrganizationResponse{}, DuplicateOf(existing, candidate)
		}
	}

	org, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		s.logger.Warn("update organization failed", zap.String("request_id", rid), zap.Error(err))
		return OrganizationResponse{}, MapRepositoryError(s.orgType, err)
	}
	if org == nil {
		return OrganizationResponse{}, organizationerrors.NotFound(s.orgType)
	}

	s.logger.Info("update organization success", zap.String("request_id", rid), zap.Int64("organization_id", id))
	return ToResponse(*org), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete organization", zap.String("request_id", rid), zap.Int64("organization_id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete organization failed", zap.String("request_id", rid), zap.Error(err))
		return MapRepositoryError(s.orgType, err)
	}
	s.logger.Info("delete organization success", zap.String("request_id", rid), zap.Int64("organization_id", id))
	return nil
}

// normalizePatch sanitizes free text and re-encodes the JSON columns so they
// bind as jsonb. Unknown keys pass through and are rejected by the repository.
func normalizePatch(patch map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(patch))
	for key, value := range patch {
		switch key {
		case "physicalAddress":
			var addr Address
			if err := reencode(value, &addr); err != nil {
				return nil, organizationerrors.ErrPhysicalAddressInvalid
			}
			out[key] = datatypes.NewJSONType(SanitizeAddress(addr))
		case "insuranceTypes":
			var types []string
			if err := reencode(value, &types); err != nil || types == nil {
				return nil, organizationerrors.ErrInsuranceTypesNotArray
			}
			out[key] = datatypes.NewJSONSlice(sanitize.Strings(types))
		case "paymentMethods":
			var methods []PaymentMethod
			if err := reencode(value, &methods); err != nil || methods == nil {
				return nil, organizationerrors.ErrPaymentMethodsNotArray
			}
			out[key] = datatypes.NewJSONSlice(SanitizePaymentMethods(methods))
		default:
			if str, ok := value.(string); ok {
				out[key] = sanitize.Text(str)
				continue
			}
			out[key] = value
		}
	}
	return out, nil
}

func reencode(value any, dst any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

func uniqueCandidate(fields map[string]any) (UniqueValues, bool) {
	str := func(key string) string {
		v, _ := fields[key].(string)
		return v
	}
	c := UniqueValues{
		LegalName:    str("legalName"),
		BrelaNumber:  str("brelaNumber"),
		TinNumber:    str("tinNumber"),
		ContactEmail: str("contactEmail"),
		ContactPhone: str("contactPhone"),
	}
	return c, c != UniqueValues{}
}

func SanitizeAddress(a Address) Address {
	return Address{
		Country:       sanitize.Text(a.Country),
		City:          sanitize.Text(a.City),
		POBox:         sanitize.Text(a.POBox),
		FloorBuilding: sanitize.Text(a.FloorBuilding),
		Street:        sanitize.Text(a.Street),
	}
}

func SanitizePaymentMethods(methods []PaymentMethod) []PaymentMethod {
	out := make([]PaymentMethod, 0, len(methods))
	for _, m := range methods {
		out = append(out, PaymentMethod{
			Method:  sanitize.Text(m.Method),
			Details: sanitize.Map(m.Details),
		})
	}
	return out
}
