package customererrors

import (
	"net/http"

	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
)

var (
	ErrCustomerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Customer not found",
		http.StatusNotFound,
	)

	ErrIndividualNotFound = apperror.New(
		apperror.CodeNotFound,
		"Individual customer not found",
		http.StatusNotFound,
	)

	ErrCorporateNotFound = apperror.New(
		apperror.CodeNotFound,
		"Corporate customer not found",
		http.StatusNotFound,
	)

	ErrOrganizationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Organization not found",
		http.StatusNotFound,
	)

	ErrLinkNotFound = apperror.New(
		apperror.CodeNotFound,
		"The customer is not associated with this organization",
		http.StatusNotFound,
	)

	ErrCustomerAlreadyExists = apperror.New(
		apperror.CodeDuplicate,
		"A customer with the same legal name, TIN number, or national ID already exists",
		http.StatusBadRequest,
	)

	ErrIndividualAlreadyExists = apperror.New(
		apperror.CodeDuplicate,
		"An individual customer with the same national ID already exists",
		http.StatusBadRequest,
	)

	ErrCorporateAlreadyExists = apperror.New(
		apperror.CodeDuplicate,
		"A corporate customer with the same BRELA registration number already exists",
		http.StatusBadRequest,
	)

	ErrNationalIDRequired = apperror.New(
		apperror.CodeValidation,
		"National ID is required for individual customers",
		http.StatusBadRequest,
	)

	ErrInvalidCustomerType = apperror.New(
		apperror.CodeValidation,
		"Customer type must be individual or corporate",
		http.StatusBadRequest,
	)

	ErrInvalidCustomerID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid customer ID",
		http.StatusBadRequest,
	)

	ErrInvalidOrganizationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid organization ID",
		http.StatusBadRequest,
	)

	ErrNoFieldsToUpdate = apperror.New(
		apperror.CodeInvalidInput,
		"No fields to update",
		http.StatusBadRequest,
	)
)
