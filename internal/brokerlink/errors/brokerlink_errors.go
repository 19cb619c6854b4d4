package brokerlinkerrors

import (
	"net/http"

	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
)

var (
	ErrAlreadyAssociated = apperror.New(
		apperror.CodeDuplicate,
		"The broker is already associated with this company",
		http.StatusBadRequest,
	)
	ErrNotAssociated = apperror.New(
		apperror.CodeNotFound,
		"The broker is not associated with this company",
		http.StatusNotFound,
	)
	ErrInvalidBrokerID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid broker ID",
		http.StatusBadRequest,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)
)
