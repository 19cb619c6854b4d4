package policy

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	policyerrors "github.com/mmnete/bimasoft-backend/internal/policy/errors"
	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
	"github.com/mmnete/bimasoft-backend/internal/shared/crud"
	"gorm.io/gorm"
)

func mapRepositoryError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	if errors.Is(err, crud.ErrNoFieldsToUpdate) {
		return policyerrors.ErrNoFieldsToUpdate
	}
	var fieldErr *crud.InvalidFieldError
	if errors.As(err, &fieldErr) {
		return apperror.BadRequest(fieldErr.Error())
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			switch pgErr.ConstraintName {
			case "uq_policies_policy_number":
				return policyerrors.ErrPolicyAlreadyExists
			case "uq_motor_policies_policy":
				return policyerrors.ErrMotorPolicyAlreadyExists
			}
		case "23503":
			if strings.Contains(pgErr.ConstraintName, "customer") {
				return policyerrors.ErrCustomerNotFound
			}
			return policyerrors.ErrPolicyNotFound
		case "23514":
			if pgErr.ConstraintName == "ck_policies_dates" {
				return policyerrors.ErrEndBeforeStart
			}
		}
	}

	return err
}
