package auditlogerrors

import (
	"net/http"

	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
)

var (
	ErrAuditLogNotFound = apperror.New(
		apperror.CodeNotFound,
		"Audit log not found",
		http.StatusNotFound,
	)
	ErrInvalidAuditLogID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid audit log ID",
		http.StatusBadRequest,
	)
	ErrInvalidEntityID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid insurance entity ID",
		http.StatusBadRequest,
	)
)
