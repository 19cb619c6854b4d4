package organizationerrors

import (
	"net/http"

	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found",
		http.StatusNotFound,
	)
	ErrBrokerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Broker not found",
		http.StatusNotFound,
	)
	ErrOrganizationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Organization not found",
		http.StatusNotFound,
	)
	ErrInvalidOrganizationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid organization ID",
		http.StatusBadRequest,
	)
	ErrInsuranceTypesNotArray = apperror.New(
		apperror.CodeInvalidInput,
		"insuranceTypes must be an array of strings.",
		http.StatusBadRequest,
	)
	ErrPaymentMethodsNotArray = apperror.New(
		apperror.CodeInvalidInput,
		"paymentMethods must be an array of payment details objects.",
		http.StatusBadRequest,
	)
	ErrPhysicalAddressInvalid = apperror.New(
		apperror.CodeInvalidInput,
		"physicalAddress must be an object.",
		http.StatusBadRequest,
	)
	ErrNoFieldsToUpdate = apperror.New(
		apperror.CodeInvalidInput,
		"No fields to update",
		http.StatusBadRequest,
	)
)

// NotFound returns the not-found error for an organization type.
func NotFound(orgType string) error {
	switch orgType {
	case "company":
		return ErrCompanyNotFound
	case "broker":
		return ErrBrokerNotFound
	}
	return ErrOrganizationNotFound
}
