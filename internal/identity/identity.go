package identity

import (
	"context"
	"errors"
)

// Identity is a freshly provisioned account.
type Identity struct {
	SubjectID         string
	GeneratedPassword string
}

// Session is the outcome of a successful password login.
type Session struct {
	SubjectID string
	Token     string
}

var (
	ErrInvalidCredentials = errors.New("identity: invalid credentials")
	ErrInvalidToken       = errors.New("identity: invalid or expired token")
	ErrAlreadyExists      = errors.New("identity: account already exists")
)

//go:generate mockgen -source=identity.go -destination=mock/identity_mock.go -package=mock

// Provider is the external account system. Implementations are constructed
// once at startup and injected.
type Provider interface {
	// CreateIdentity provisions an account for email with a generated
	// password and returns both the subject and the password.
	CreateIdentity(ctx context.Context, email string, fullName string) (Identity, error)
	Authenticate(ctx context.Context, email string, password string) (Session, error)
	// VerifyToken returns the subject a bearer token belongs to.
	VerifyToken(ctx context.Context, token string) (string, error)
	// Revoke invalidates every session of subjectID.
	Revoke(ctx context.Context, subjectID string) error
	// DeleteIdentity removes an account. Used to compensate a failed
	// onboarding after the account was already created.
	DeleteIdentity(ctx context.Context, subjectID string) error
}
