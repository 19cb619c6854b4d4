package apperror

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// formatFieldName turns a JSON key into a label: adminEmail -> Admin Email.
func formatFieldName(s string) string {
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == '_':
			b.WriteRune(' ')
		case i > 0 && unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return cases.Title(language.English).String(b.String())
}

// MapValidationError converts binding errors into client-facing AppErrors.
func MapValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		e := verrs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(field)
		case "email":
			return New(CodeValidation, "Invalid email format", http.StatusBadRequest)
		case "phone":
			return New(CodeValidation, field+" must be a valid phone number", http.StatusBadRequest)
		default:
			return InvalidField(field)
		}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return InvalidField(formatFieldName(lastSegment(typeErr.Field)))
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return New(CodeInvalidInput, "Malformed JSON body", http.StatusBadRequest)
	}

	return New(CodeInvalidInput, "Invalid input", http.StatusBadRequest)
}

func lastSegment(field string) string {
	if i := strings.LastIndex(field, "."); i >= 0 {
		return field[i+1:]
	}
	return field
}
