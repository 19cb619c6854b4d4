package local

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mmnete/bimasoft-backend/internal/identity"
	"gorm.io/gorm"
)

type Credential struct {
	Subject      string    `gorm:"column:subject;primaryKey"`
	Email        string    `gorm:"column:email"`
	PasswordHash string    `gorm:"column:password_hash"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (Credential) TableName() string { return "identity_credentials" }

type credentialStore struct {
	db *gorm.DB
}

func (s *credentialStore) create(ctx context.Context, c *Credential) error {
	err := s.db.WithContext(ctx).Create(c).Error
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return identity.ErrAlreadyExists
	}
	return err
}

func (s *credentialStore) byEmail(ctx context.Context, email string) (*Credential, error) {
	var c Credential
	err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *credentialStore) delete(ctx context.Context, subject string) error {
	return s.db.WithContext(ctx).Where("subject = ?", subject).Delete(&Credential{}).Error
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
