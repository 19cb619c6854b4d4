package user

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mmnete/bimasoft-backend/internal/identity"
	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
	"github.com/mmnete/bimasoft-backend/internal/shared/contextutil"
	"github.com/mmnete/bimasoft-backend/internal/shared/sanitize"
	usererrors "github.com/mmnete/bimasoft-backend/internal/user/errors"
	"go.uber.org/zap"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock

type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetAll(ctx context.Context) ([]UserResponse, error)
	GetByID(ctx context.Context, id int64) (UserResponse, error)
	Search(ctx context.Context, query string) ([]UserResponse, error)
	GetByRole(ctx context.Context, role string) ([]UserResponse, error)
	GetByInsuranceEntity(ctx context.Context, entityID int64, entityType string) ([]UserResponse, error)
	Update(ctx context.Context, id int64, patch map[string]any) (UserResponse, error)
	Delete(ctx context.Context, id int64) error

	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Logout(ctx context.Context, uid string) error
	// CheckLoggedIn returns the user owning a subject already verified by
	// the bearer session middleware.
	CheckLoggedIn(ctx context.Context, subject string) (UserResponse, error)
}

type service struct {
	repo     Repository
	identity identity.Provider
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(repo Repository, provider identity.Provider, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{
		repo:     repo,
		identity: provider,
		validate: validator.New(),
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create user requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.Int64("insurance_entity_id", req.InsuranceEntityID),
	)

	existing, err := s.repo.FindByUniqueFields(ctx, map[string]any{
		"email":        req.Email,
		"identity_uid": req.IdentityUID,
	}, 0)
	if err != nil {
		s.logger.Error("create user uniqueness check failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, err
	}
	if existing != nil {
		s.logger.Warn("create user duplicate", zap.String("request_id", rid), zap.Int64("conflicting_id", existing.ID))
		return UserResponse{}, usererrors.ErrUserAlreadyExists
	}

	status := req.Status
	if status == "" {
		status = StatusActive
	}
	u := &User{
		IdentityUID:       req.IdentityUID,
		FullName:          sanitize.Text(req.FullName),
		Email:             req.Email,
		PhoneNumber:       sanitize.Ptr(req.PhoneNumber),
		Role:              sanitize.Text(req.Role),
		InsuranceEntityID: req.InsuranceEntityID,
		EntityType:        req.EntityType,
		Status:            status,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		s.logger.Error("create user persist failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create user success", zap.String("request_id", rid), zap.Int64("user_id", u.ID))
	return mapToResponse(*u), nil
}

func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all users failed", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.Error(err))
		return nil, err
	}
	return mapToResponses(users), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (UserResponse, error) {
	u, err := s.repo.FindOne(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	if u == nil {
		return UserResponse{}, usererrors.ErrUserNotFound
	}
	return mapToResponse(*u), nil
}

func (s *service) Search(ctx context.Context, query string) ([]UserResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperror.ErrSearchQueryRequired
	}
	users, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return mapToResponses(users), nil
}

func (s *service) GetByRole(ctx context.Context, role string) ([]UserResponse, error) {
	users, err := s.repo.FindByRole(ctx, role)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToResponses(users), nil
}

func (s *service) GetByInsuranceEntity(ctx context.Context, entityID int64, entityType string) ([]UserResponse, error) {
	users, err := s.repo.FindByInsuranceEntity(ctx, entityID, entityType)
	if err != nil {
		return nil, err
	}
	return mapToResponses(users), nil
}

func (s *service) Update(ctx context.Context, id int64, patch map[string]any) (UserResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update user requested", zap.String("request_id", rid), zap.Int64("user_id", id))

	fields := make(map[string]any, len(patch))
	for k, v := range patch {
		if str, ok := v.(string); ok {
			v = sanitize.Text(str)
		}
		fields[k] = v
	}

	email, _ := fields["email"].(string)
	uid, _ := fields["identityUid"].(string)
	if email != "" {
		if err := s.validate.Var(email, "email"); err != nil {
			return UserResponse{}, usererrors.ErrInvalidEmail
		}
	}
	if email != "" || uid != "" {
		existing, err := s.repo.FindByUniqueFields(ctx, map[string]any{"email": email, "identity_uid": uid}, id)
		if err != nil {
			s.logger.Error("update user uniqueness check failed", zap.String("request_id", rid), zap.Error(err))
			return UserResponse{}, err
		}
		if existing != nil {
			return UserResponse{}, usererrors.ErrUserAlreadyExists
		}
	}

	u, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		s.logger.Warn("update user failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}
	if u == nil {
		return UserResponse{}, usererrors.ErrUserNotFound
	}

	s.logger.Info("update user success", zap.String("request_id", rid), zap.Int64("user_id", id))
	return mapToResponse(*u), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	rid := contextutil.GetRequestID(ctx)
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete user failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	s.logger.Info("delete user success", zap.String("request_id", rid), zap.Int64("user_id", id))
	return nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return LoginResponse{}, usererrors.ErrCredentialsRequired
	}

	session, err := s.identity.Authenticate(ctx, email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			s.logger.Warn("login rejected", zap.String("request_id", rid), zap.String("email", email))
			return LoginResponse{}, usererrors.ErrInvalidCredentials
		}
		s.logger.Error("login identity provider failed", zap.String("request_id", rid), zap.Error(err))
		return LoginResponse{}, apperror.Wrap(err, apperror.CodeExternalDependency, "Login failed", http.StatusBadGateway)
	}

	u, err := s.repo.FindByIdentityUID(ctx, session.SubjectID)
	if err != nil {
		s.logger.Error("login user lookup failed", zap.String("request_id", rid), zap.Error(err))
		return LoginResponse{}, err
	}
	if u == nil {
		s.logger.Warn("login identity has no user row", zap.String("request_id", rid), zap.String("subject", session.SubjectID))
		return LoginResponse{}, usererrors.ErrUserNotFound
	}

	s.logger.Info("login success", zap.String("request_id", rid), zap.Int64("user_id", u.ID))
	return LoginResponse{Token: session.Token, User: mapToResponse(*u)}, nil
}

func (s *service) Logout(ctx context.Context, uid string) error {
	rid := contextutil.GetRequestID(ctx)
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return usererrors.ErrUIDRequired
	}
	if err := s.identity.Revoke(ctx, uid); err != nil {
		s.logger.Error("logout revoke failed", zap.String("request_id", rid), zap.Error(err))
		return apperror.Wrap(err, apperror.CodeExternalDependency, "Logout failed", http.StatusBadGateway)
	}
	s.logger.Info("logout success", zap.String("request_id", rid), zap.String("subject", uid))
	return nil
}

func (s *service) CheckLoggedIn(ctx context.Context, subject string) (UserResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if subject == "" {
		return UserResponse{}, usererrors.ErrTokenRequired
	}

	u, err := s.repo.FindByIdentityUID(ctx, subject)
	if err != nil {
		s.logger.Error("check logged in lookup failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, err
	}
	if u == nil {
		s.logger.Warn("session subject has no user row", zap.String("request_id", rid), zap.String("subject", subject))
		return UserResponse{}, usererrors.ErrUserNotFound
	}
	return mapToResponse(*u), nil
}
