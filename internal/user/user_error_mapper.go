package user

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
	"github.com/mmnete/bimasoft-backend/internal/shared/crud"
	usererrors "github.com/mmnete/bimasoft-backend/internal/user/errors"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}
	if errors.Is(err, crud.ErrNoFieldsToUpdate) {
		return usererrors.ErrNoFieldsToUpdate
	}
	var fieldErr *crud.InvalidFieldError
	if errors.As(err, &fieldErr) {
		return apperror.BadRequest(fieldErr.Error())
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_users_email", "uq_users_identity_uid":
			return usererrors.ErrUserAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_users_") {
		return usererrors.ErrUserAlreadyExists
	}

	return err
}
