package customer

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	customererrors "github.com/mmnete/bimasoft-backend/internal/customer/errors"
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
		return customererrors.ErrNoFieldsToUpdate
	}
	var fieldErr *crud.InvalidFieldError
	if errors.As(err, &fieldErr) {
		return apperror.BadRequest(fieldErr.Error())
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505" && pgErr.ConstraintName == "uq_individual_customers_customer":
			return apperror.Duplicate("The customer already has individual details")
		case pgErr.Code == "23505" && pgErr.ConstraintName == "uq_corporate_customers_customer":
			return apperror.Duplicate("The customer already has corporate details")
		case pgErr.Code == "23503":
			return notFound
		case pgErr.Code == "23514":
			return customererrors.ErrInvalidCustomerType
		}
	}

	return err
}
