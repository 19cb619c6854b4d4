package usererrors

import (
	"net/http"

	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrUserAlreadyExists = apperror.New(
		apperror.CodeDuplicate,
		"A user with the same email or identity UID already exists",
		http.StatusBadRequest,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)

	ErrInvalidEntityID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid insurance entity ID",
		http.StatusBadRequest,
	)

	ErrInvalidEmail = apperror.New(
		apperror.CodeValidation,
		"Invalid email format",
		http.StatusBadRequest,
	)

	ErrCredentialsRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Email and password are required",
		http.StatusBadRequest,
	)

	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid credentials",
		http.StatusUnauthorized,
	)

	ErrUIDRequired = apperror.New(
		apperror.CodeInvalidInput,
		"User UID is required",
		http.StatusBadRequest,
	)

	ErrTokenRequired = apperror.New(
		apperror.CodeUnauthorized,
		"Authorization token is required",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid or expired token",
		http.StatusUnauthorized,
	)

	ErrNoFieldsToUpdate = apperror.New(
		apperror.CodeInvalidInput,
		"No fields to update",
		http.StatusBadRequest,
	)
)
