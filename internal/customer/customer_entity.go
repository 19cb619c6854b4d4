package customer

import (
	"time"

	"github.com/mmnete/bimasoft-backend/internal/organization"
	"github.com/mmnete/bimasoft-backend/internal/shared/crud"
	"gorm.io/datatypes"
)

const (
	TypeIndividual = "individual"
	TypeCorporate  = "corporate"
)

type Customer struct {
	ID              int64                                    `gorm:"column:id;primaryKey"`
	CustomerType    string                                   `gorm:"column:customer_type"`
	LegalName       string                                   `gorm:"column:legal_name"`
	ContactEmail    *string                                  `gorm:"column:contact_email"`
	ContactPhone    *string                                  `gorm:"column:contact_phone"`
	PhysicalAddress datatypes.JSONType[organization.Address] `gorm:"column:physical_address"`
	TinNumber       *string                                  `gorm:"column:tin_number"`
	CreatedAt       time.Time                                `gorm:"column:created_at"`
	UpdatedAt       time.Time                                `gorm:"column:updated_at"`
}

type IndividualCustomer struct {
	ID             int64   `gorm:"column:id;primaryKey"`
	CustomerID     int64   `gorm:"column:customer_id"`
	NationalID     *string `gorm:"column:national_id"`
	DriversLicense *string `gorm:"column:drivers_license"`
	PassportNumber *string `gorm:"column:passport_number"`
	Gender         *string `gorm:"column:gender"`
	MaritalStatus  *string `gorm:"column:marital_status"`
}

type CorporateCustomer struct {
	ID                      int64   `gorm:"column:id;primaryKey"`
	CustomerID              int64   `gorm:"column:customer_id"`
	BrelaRegistrationNumber *string `gorm:"column:brela_registration_number"`
	CompanyDetailsURL       *string `gorm:"column:company_details_url"`
}

// Link ties a customer to an organization that serves it.
type Link struct {
	CustomerID     int64     `gorm:"column:customer_id;primaryKey"`
	OrganizationID int64     `gorm:"column:organization_id;primaryKey"`
	CreatedAt      time.Time `gorm:"column:created_at;<-:false"`
}

var customerTable = crud.Table{
	Name: "customers",
	Columns: map[string]string{
		"customerType":    "customer_type",
		"legalName":       "legal_name",
		"contactEmail":    "contact_email",
		"contactPhone":    "contact_phone",
		"physicalAddress": "physical_address",
		"tinNumber":       "tin_number",
	},
	SearchColumns: []string{"legal_name", "contact_email", "contact_phone"},
	UniqueColumns: []string{"legal_name", "tin_number"},
	Timestamps:    true,
}

var individualTable = crud.Table{
	Name: "individual_customers",
	Columns: map[string]string{
		"customerId":     "customer_id",
		"nationalId":     "national_id",
		"driversLicense": "drivers_license",
		"passportNumber": "passport_number",
		"gender":         "gender",
		"maritalStatus":  "marital_status",
	},
	SearchColumns: []string{"national_id", "drivers_license", "passport_number"},
	UniqueColumns: []string{"national_id", "customer_id"},
}

var corporateTable = crud.Table{
	Name: "corporate_customers",
	Columns: map[string]string{
		"customerId":              "customer_id",
		"brelaRegistrationNumber": "brela_registration_number",
		"companyDetailsUrl":       "company_details_url",
	},
	SearchColumns: []string{"brela_registration_number"},
	UniqueColumns: []string{"brela_registration_number", "customer_id"},
}

const linkTable = "customers_organizations"

func ValidType(customerType string) bool {
	return customerType == TypeIndividual || customerType == TypeCorporate
}
