package policyerrors

import (
	"net/http"

	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
)

var (
	ErrPolicyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Policy not found",
		http.StatusNotFound,
	)

	ErrMotorPolicyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Motor policy not found",
		http.StatusNotFound,
	)

	ErrCustomerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Customer not found",
		http.StatusNotFound,
	)

	ErrPolicyAlreadyExists = apperror.New(
		apperror.CodeDuplicate,
		"A policy with the same policy number already exists",
		http.StatusBadRequest,
	)

	ErrMotorPolicyAlreadyExists = apperror.New(
		apperror.CodeDuplicate,
		"A motor policy with the same policy ID already exists",
		http.StatusBadRequest,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeValidation,
		"Dates must use the YYYY-MM-DD format",
		http.StatusBadRequest,
	)

	ErrEndBeforeStart = apperror.New(
		apperror.CodeValidation,
		"End date must not be before start date",
		http.StatusBadRequest,
	)

	ErrInvalidPolicyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid policy ID",
		http.StatusBadRequest,
	)

	ErrInvalidCustomerID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid customer ID",
		http.StatusBadRequest,
	)

	ErrInvalidEntityID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid insurance entity ID",
		http.StatusBadRequest,
	)

	ErrNoFieldsToUpdate = apperror.New(
		apperror.CodeInvalidInput,
		"No fields to update",
		http.StatusBadRequest,
	)
)
