package onboardingerrors

import (
	"net/http"

	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
)

var (
	ErrAccountCreationFailed = apperror.New(
		apperror.CodeInvalidInput,
		"Failed to create account",
		http.StatusBadRequest,
	)
	ErrNotificationFailed = apperror.New(
		apperror.CodeNotificationFailed,
		"The organization was created but the notification email could not be sent",
		http.StatusInternalServerError,
	)
	ErrIncorrectDevPassword = apperror.New(
		apperror.CodeUnauthorized,
		"Incorrect dev password!",
		http.StatusUnauthorized,
	)
	ErrOrganizationIDRequired = apperror.New(
		apperror.CodeInvalidInput,
		"organizationId is required",
		http.StatusBadRequest,
	)
)
