package onboarding

import (
	"context"

	"github.com/mmnete/bimasoft-backend/internal/auditlog"
	"github.com/mmnete/bimasoft-backend/internal/organization"
	"github.com/mmnete/bimasoft-backend/internal/shared/requestmeta"
)

// Request is a validated onboarding submission.
type Request struct {
	LegalName         string
	BrelaNumber       string
	TinNumber         string
	ContactEmail      string
	ContactPhone      string
	TiraLicense       *string
	PhysicalAddress   organization.Address
	InsuranceTypes    []string
	PaymentMethods    []organization.PaymentMethod
	CompanyDetailsURL *string

	AdminFullName    string
	AdminEmail       string
	AdminPhoneNumber string

	Client requestmeta.ClientMeta
}

func (r Request) uniqueValues() organization.UniqueValues {
	return organization.UniqueValues{
		LegalName:    r.LegalName,
		BrelaNumber:  r.BrelaNumber,
		TinNumber:    r.TinNumber,
		ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone,
	}
}

type Result struct {
	organization.OrganizationResponse
	AdminUserID int64 `json:"adminUserId"`
}

//go:generate mockgen -source=onboarding.go -destination=mock/onboarding_mock.go -package=mock

type Onboarder interface {
	Onboard(ctx context.Context, orgType string, req Request) (Result, error)
}

type Approver interface {
	Approve(ctx context.Context, orgType string, id int64, secret string) (organization.OrganizationResponse, error)
}

// MetadataRecorder stores who created an organization and from where.
type MetadataRecorder interface {
	RecordMetadata(ctx context.Context, in auditlog.MetadataInput) error
}
