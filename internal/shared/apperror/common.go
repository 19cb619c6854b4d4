package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"Forbidden",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrInvalidID = New(
		CodeInvalidInput,
		"Invalid ID",
		http.StatusBadRequest,
	)

	ErrSearchQueryRequired = New(
		CodeInvalidInput,
		"Search query is required",
		http.StatusBadRequest,
	)
)

// RequiredField reports a missing mandatory input field.
func RequiredField(field string) *AppError {
	return New(CodeValidation, field+" is required", http.StatusBadRequest)
}

// InvalidField reports an input field that failed validation.
func InvalidField(field string) *AppError {
	return New(CodeValidation, field+" is invalid", http.StatusBadRequest)
}

// Duplicate reports a violated uniqueness invariant. Duplicates are a client
// error and map to 400 rather than 409.
func Duplicate(message string) *AppError {
	return New(CodeDuplicate, message, http.StatusBadRequest)
}

func BadRequest(message string) *AppError {
	return New(CodeInvalidInput, message, http.StatusBadRequest)
}

func NotFound(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

func Unauthorized(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}
