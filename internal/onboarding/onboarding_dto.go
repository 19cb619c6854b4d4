package onboarding

import (
	"bytes"
	"encoding/json"

	"github.com/mmnete/bimasoft-backend/internal/organization"
	organizationerrors "github.com/mmnete/bimasoft-backend/internal/organization/errors"
	"github.com/mmnete/bimasoft-backend/internal/shared/requestmeta"
	"github.com/mmnete/bimasoft-backend/internal/shared/sanitize"
)

type CreateOrganizationRequest struct {
	LegalName         string               `json:"legalName" binding:"required"`
	BrelaNumber       string               `json:"brelaNumber" binding:"required"`
	TinNumber         string               `json:"tinNumber" binding:"required"`
	ContactEmail      string               `json:"contactEmail" binding:"required,email"`
	ContactPhone      string               `json:"contactPhone" binding:"required,phone"`
	TiraLicense       *string              `json:"tiraLicense"`
	PhysicalAddress   organization.Address `json:"physicalAddress"`
	InsuranceTypes    json.RawMessage      `json:"insuranceTypes"`
	PaymentMethods    json.RawMessage      `json:"paymentMethods"`
	CompanyDetailsURL *string              `json:"companyDetailsUrl"`
	AdminFullName     string               `json:"adminFullName" binding:"required"`
	AdminEmail        string               `json:"adminEmail" binding:"required,email"`
	AdminPhoneNumber  string               `json:"adminPhoneNumber" binding:"omitempty,phone"`
	Geolocation       string               `json:"geolocation"`
}

type ApproveRequest struct {
	OrganizationID int64  `json:"organizationId"`
	DevPassword    string `json:"devPassword"`
}

// toRequest checks that the list fields are JSON arrays and sanitizes free
// text.
func (r CreateOrganizationRequest) toRequest(client requestmeta.ClientMeta) (Request, error) {
	var types []string
	if !isJSONArray(r.InsuranceTypes) || json.Unmarshal(r.InsuranceTypes, &types) != nil {
		return Request{}, organizationerrors.ErrInsuranceTypesNotArray
	}
	var methods []organization.PaymentMethod
	if !isJSONArray(r.PaymentMethods) || json.Unmarshal(r.PaymentMethods, &methods) != nil {
		return Request{}, organizationerrors.ErrPaymentMethodsNotArray
	}

	client.Geolocation = r.Geolocation
	return Request{
		LegalName:         sanitize.Text(r.LegalName),
		BrelaNumber:       sanitize.Text(r.BrelaNumber),
		TinNumber:         sanitize.Text(r.TinNumber),
		ContactEmail:      r.ContactEmail,
		ContactPhone:      sanitize.Text(r.ContactPhone),
		TiraLicense:       sanitize.Ptr(r.TiraLicense),
		PhysicalAddress:   organization.SanitizeAddress(r.PhysicalAddress),
		InsuranceTypes:    sanitize.Strings(types),
		PaymentMethods:    organization.SanitizePaymentMethods(methods),
		CompanyDetailsURL: sanitize.Ptr(r.CompanyDetailsURL),
		AdminFullName:     sanitize.Text(r.AdminFullName),
		AdminEmail:        r.AdminEmail,
		AdminPhoneNumber:  sanitize.Text(r.AdminPhoneNumber),
		Client:            client,
	}, nil
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
