package brokerlink

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	brokerlinkerrors "github.com/mmnete/bimasoft-backend/internal/brokerlink/errors"
	organizationerrors "github.com/mmnete/bimasoft-backend/internal/organization/errors"
)

// mapRepositoryError covers the race where two requests link the same pair
// or an organization disappears between the existence check and the insert.
func mapRepositoryError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return brokerlinkerrors.ErrAlreadyAssociated
		case "23503":
			if pgErr.ConstraintName == "brokers_companies_broker_id_fkey" {
				return organizationerrors.ErrBrokerNotFound
			}
			return organizationerrors.ErrCompanyNotFound
		}
	}
	return err
}
