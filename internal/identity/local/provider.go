// Package local is the built-in identity provider: bcrypt credentials in
// Postgres, HS256 session tokens and a Redis revocation marker per subject.
package local

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mmnete/bimasoft-backend/internal/identity"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const revokedKeyPrefix = "identity:revoked:"

type Provider struct {
	store  *credentialStore
	redis  *redis.Client
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger
}

var _ identity.Provider = (*Provider)(nil)

func NewProvider(db *gorm.DB, rdb *redis.Client, secret string, ttl time.Duration, logger ...*zap.Logger) *Provider {
	l := zap.L().Named("identity.local")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Provider{
		store:  &credentialStore{db: db},
		redis:  rdb,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
		logger: l,
	}
}

func (p *Provider) CreateIdentity(ctx context.Context, email string, fullName string) (identity.Identity, error) {
	password, err := identity.GeneratePassword(identity.DefaultPasswordLength)
	if err != nil {
		return identity.Identity{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return identity.Identity{}, fmt.Errorf("hash password: %w", err)
	}

	cred := &Credential{
		Subject:      uuid.NewString(),
		Email:        normalizeEmail(email),
		PasswordHash: string(hash),
		CreatedAt:    p.now().UTC(),
	}
	if err := p.store.create(ctx, cred); err != nil {
		return identity.Identity{}, err
	}

	p.logger.Info("identity created",
		zap.String("subject", cred.Subject),
		zap.String("full_name", fullName),
	)
	return identity.Identity{SubjectID: cred.Subject, GeneratedPassword: password}, nil
}

func (p *Provider) Authenticate(ctx context.Context, email string, password string) (identity.Session, error) {
	cred, err := p.store.byEmail(ctx, email)
	if err != nil {
		return identity.Session{}, err
	}
	if cred == nil {
		return identity.Session{}, identity.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return identity.Session{}, identity.ErrInvalidCredentials
	}

	token, err := p.generateToken(cred.Subject, cred.Email)
	if err != nil {
		return identity.Session{}, err
	}
	return identity.Session{SubjectID: cred.Subject, Token: token}, nil
}

func (p *Provider) generateToken(subject, email string) (string, error) {
	now := p.now()
	claims := jwt.MapClaims{
		"sub":    subject,
		"email":  email,
		"iat":    now.Unix(),
		"exp":    now.Add(p.ttl).Unix(),
		"jti":    uuid.NewString(),
		"iat_ns": strconv.FormatInt(now.UnixNano(), 10),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}

func (p *Provider) VerifyToken(ctx context.Context, token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, identity.ErrInvalidToken
		}
		return p.secret, nil
	}, jwt.WithTimeFunc(p.now))
	if err != nil || !parsed.Valid {
		return "", identity.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", identity.ErrInvalidToken
	}
	subject, _ := claims["sub"].(string)
	if subject == "" {
		return "", identity.ErrInvalidToken
	}
	issuedRaw, _ := claims["iat_ns"].(string)
	issued, err := strconv.ParseInt(issuedRaw, 10, 64)
	if err != nil {
		return "", identity.ErrInvalidToken
	}

	revoked, err := p.redis.Get(ctx, revokedKeyPrefix+subject).Int64()
	switch {
	case errors.Is(err, redis.Nil):
		return subject, nil
	case err != nil:
		return "", fmt.Errorf("check revocation: %w", err)
	case issued <= revoked:
		return "", identity.ErrInvalidToken
	}
	return subject, nil
}

// Revoke marks every token issued up to now as invalid. The marker only
// needs to outlive the longest token lifetime.
func (p *Provider) Revoke(ctx context.Context, subjectID string) error {
	stamp := p.now().UnixNano()
	if err := p.redis.Set(ctx, revokedKeyPrefix+subjectID, stamp, p.ttl).Err(); err != nil {
		return fmt.Errorf("revoke sessions: %w", err)
	}
	return nil
}

func (p *Provider) DeleteIdentity(ctx context.Context, subjectID string) error {
	if err := p.store.delete(ctx, subjectID); err != nil {
		return err
	}
	return p.Revoke(ctx, subjectID)
}
