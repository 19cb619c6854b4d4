package apperror_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps its status and message", func(t *testing.T) {
		err := apperror.Duplicate(`A company with the legal name "Acme" already exists`)

		httpErr := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, apperror.CodeDuplicate, httpErr.Code)
		assert.Contains(t, httpErr.Message, "already exists")
	})

	t.Run("wrapped app error is unwrapped", func(t *testing.T) {
		err := fmt.Errorf("service: %w", apperror.NotFound("Company not found"))

		httpErr := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, "Company not found", httpErr.Message)
	})

	t.Run("unknown error becomes generic 500", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("pq: connection reset"))

		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.NotContains(t, httpErr.Message, "pq")
	})

	t.Run("details are carried", func(t *testing.T) {
		err := apperror.BadRequest("bad").WithDetails(map[string]string{"field": "x"})

		httpErr := apperror.ToHTTP(err)

		assert.Equal(t, map[string]string{"field": "x"}, httpErr.Details)
	})
}

func TestAppError_WithCause(t *testing.T) {
	cause := errors.New("smtp down")
	err := apperror.ErrInternal.WithCause(cause)

	assert.ErrorIs(t, err, cause)
	assert.Nil(t, apperror.ErrInternal.Err)
}

type signup struct {
	LegalName  string `json:"legalName" validate:"required"`
	AdminEmail string `json:"adminEmail" validate:"required,email"`
	Website    string `json:"website" validate:"omitempty,url"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	return v
}

func TestMapValidationError(t *testing.T) {
	v := newValidator()

	t.Run("required field", func(t *testing.T) {
		err := v.Struct(signup{AdminEmail: "a@b.co"})

		mapped := apperror.ToHTTP(apperror.MapValidationError(err))

		assert.Equal(t, http.StatusBadRequest, mapped.Status)
		assert.Equal(t, "Legal Name is required", mapped.Message)
	})

	t.Run("email format", func(t *testing.T) {
		err := v.Struct(signup{LegalName: "Acme", AdminEmail: "nope"})

		mapped := apperror.ToHTTP(apperror.MapValidationError(err))

		assert.Equal(t, "Invalid email format", mapped.Message)
	})

	t.Run("other tag", func(t *testing.T) {
		err := v.Struct(signup{LegalName: "Acme", AdminEmail: "a@b.co", Website: "::"})

		mapped := apperror.ToHTTP(apperror.MapValidationError(err))

		assert.Equal(t, "Website is invalid", mapped.Message)
	})

	t.Run("json type mismatch", func(t *testing.T) {
		var payload struct {
			InsuranceTypes []string `json:"insuranceTypes"`
		}
		err := json.Unmarshal([]byte(`{"insuranceTypes":"motor"}`), &payload)

		mapped := apperror.ToHTTP(apperror.MapValidationError(err))

		assert.Equal(t, "Insurance Types is invalid", mapped.Message)
	})
}

func TestInit_PhoneRule(t *testing.T) {
	apperror.Init()
	apperror.Init()

	type contact struct {
		ContactPhone string `json:"contactPhone" binding:"required,phone"`
	}

	for _, phone := range []string{"+255712345678", "0712 345 678", "0712-345-678"} {
		assert.NoError(t, binding.Validator.ValidateStruct(contact{ContactPhone: phone}), phone)
	}

	err := binding.Validator.ValidateStruct(contact{ContactPhone: "call me"})
	mapped := apperror.ToHTTP(apperror.MapValidationError(err))
	assert.Equal(t, http.StatusBadRequest, mapped.Status)
	assert.Equal(t, "Contact Phone must be a valid phone number", mapped.Message)
}
