package organization

import (
	"strings"
	"time"

	"github.com/mmnete/bimasoft-backend/internal/shared/crud"
	"gorm.io/datatypes"
)

const (
	TypeCompany = "company"
	TypeBroker  = "broker"

	StatusPendingApproval = "pending_approval"
	StatusApproved        = "approved"

	MetadataActionCreated = "created"
)

type Address struct {
	Country       string `json:"country"`
	City          string `json:"city"`
	POBox         string `json:"poBox"`
	FloorBuilding string `json:"floorBuilding"`
	Street        string `json:"street"`
}

// String joins the non-empty parts from street to country.
func (a Address) String() string {
	parts := make([]string, 0, 5)
	for _, p := range []string{a.Street, a.FloorBuilding, a.POBox, a.City, a.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

type PaymentMethod struct {
	Method  string            `json:"method"`
	Details map[string]string `json:"details"`
}

type Organization struct {
	ID                int64                              `gorm:"column:id;primaryKey"`
	OrganizationType  string                             `gorm:"column:organization_type"`
	LegalName         string                             `gorm:"column:legal_name"`
	BrelaNumber       string                             `gorm:"column:brela_number"`
	TinNumber         string                             `gorm:"column:tin_number"`
	ContactEmail      string                             `gorm:"column:contact_email"`
	ContactPhone      string                             `gorm:"column:contact_phone"`
	TiraLicense       *string                            `gorm:"column:tira_license"`
	PhysicalAddress   datatypes.JSONType[Address]        `gorm:"column:physical_address"`
	InsuranceTypes    datatypes.JSONSlice[string]        `gorm:"column:insurance_types"`
	PaymentMethods    datatypes.JSONSlice[PaymentMethod] `gorm:"column:payment_methods"`
	CompanyDetailsURL *string                            `gorm:"column:company_details_url"`
	AccountStatus     string                             `gorm:"column:account_status"`
	CreatedAt         time.Time                          `gorm:"column:created_at"`
	UpdatedAt         time.Time                          `gorm:"column:updated_at"`
}

// PendingOrganization is an organization awaiting approval together with
// the metadata captured when it was created.
type PendingOrganization struct {
	Organization    `gorm:"embedded"`
	PerformedBy     *string    `gorm:"column:performed_by"`
	IPAddress       *string    `gorm:"column:ip_address"`
	DeviceType      *string    `gorm:"column:device_type"`
	OperatingSystem *string    `gorm:"column:operating_system"`
	Browser         *string    `gorm:"column:browser"`
	Geolocation     *string    `gorm:"column:geolocation"`
	RecordedAt      *time.Time `gorm:"column:recorded_at"`
}

var columns = map[string]string{
	"legalName":         "legal_name",
	"brelaNumber":       "brela_number",
	"tinNumber":         "tin_number",
	"contactEmail":      "contact_email",
	"contactPhone":      "contact_phone",
	"tiraLicense":       "tira_license",
	"physicalAddress":   "physical_address",
	"insuranceTypes":    "insurance_types",
	"paymentMethods":    "payment_methods",
	"companyDetailsUrl": "company_details_url",
}

var uniqueColumns = []string{"legal_name", "brela_number", "tin_number", "contact_email", "contact_phone"}

// TableFor returns the typed view for orgType, or the base table when
// orgType is empty.
func TableFor(orgType string) crud.Table {
	name := "organizations"
	switch orgType {
	case TypeCompany:
		name = "insurance_companies"
	case TypeBroker:
		name = "insurance_brokers"
	}
	return crud.Table{
		Name:          name,
		Columns:       columns,
		SearchColumns: []string{"legal_name", "contact_email", "brela_number", "tin_number"},
		UniqueColumns: uniqueColumns,
		Timestamps:    true,
	}
}

// Label is the lower-case noun used in messages.
func Label(orgType string) string {
	switch orgType {
	case TypeBroker:
		return "broker"
	case TypeCompany:
		return "company"
	}
	return "organization"
}

func ValidType(orgType string) bool {
	return orgType == TypeCompany || orgType == TypeBroker
}
