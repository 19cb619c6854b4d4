package organization

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	organizationerrors "github.com/mmnete/bimasoft-backend/internal/organization/errors"
	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
	"github.com/mmnete/bimasoft-backend/internal/shared/crud"
	"gorm.io/gorm"
)

var constraintFields = map[string]string{
	"uq_organizations_legal_name":    "legal name",
	"uq_organizations_brela_number":  "BRELA number",
	"uq_organizations_tin_number":    "TIN number",
	"uq_organizations_contact_email": "contact email",
	"uq_organizations_contact_phone": "contact phone",
}

// MapRepositoryError translates persistence failures into client facing
// errors for an organization of orgType.
func MapRepositoryError(orgType string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return organizationerrors.NotFound(orgType)
	}
	if errors.Is(err, crud.ErrNoFieldsToUpdate) {
		return organizationerrors.ErrNoFieldsToUpdate
	}
	var fieldErr *crud.InvalidFieldError
	if errors.As(err, &fieldErr) {
		return apperror.BadRequest(fieldErr.Error())
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if field, ok := constraintFields[pgErr.ConstraintName]; ok {
			return duplicateField(orgType, field)
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		for constraint, field := range constraintFields {
			if strings.Contains(errMsg, constraint) {
				return duplicateField(orgType, field)
			}
		}
	}

	return err
}

func duplicateField(orgType, field string) error {
	return apperror.Duplicate(fmt.Sprintf("A %s with the same %s already exists", Label(orgType), field))
}

// UniqueValues are the candidate values checked before a write.
type UniqueValues struct {
	LegalName    string
	BrelaNumber  string
	TinNumber    string
	ContactEmail string
	ContactPhone string
}

func (v UniqueValues) Columns() map[string]any {
	return map[string]any{
		"legal_name":    v.LegalName,
		"brela_number":  v.BrelaNumber,
		"tin_number":    v.TinNumber,
		"contact_email": v.ContactEmail,
		"contact_phone": v.ContactPhone,
	}
}

// DuplicateOf names the first field candidate shares with existing. The
// message carries the type of the row that holds the value.
func DuplicateOf(existing *Organization, candidate UniqueValues) error {
	label := Label(existing.OrganizationType)
	checks := []struct {
		field string
		have  string
		want  string
	}{
		{"legal name", existing.LegalName, candidate.LegalName},
		{"BRELA number", existing.BrelaNumber, candidate.BrelaNumber},
		{"TIN number", existing.TinNumber, candidate.TinNumber},
		{"contact email", existing.ContactEmail, candidate.ContactEmail},
		{"contact phone", existing.ContactPhone, candidate.ContactPhone},
	}
	for _, c := range checks {
		if c.want != "" && c.have == c.want {
			return apperror.Duplicate(fmt.Sprintf("A %s with the %s %q already exists", label, c.field, c.want))
		}
	}
	return apperror.Duplicate(fmt.Sprintf("A %s with the same details already exists", label))
}
