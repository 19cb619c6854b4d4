package customer

import (
	"time"

	"github.com/mmnete/bimasoft-backend/internal/organization"
)

type CreateCustomerRequest struct {
	CustomerType    string               `json:"customerType" binding:"required,oneof=individual corporate"`
	LegalName       string               `json:"legalName" binding:"required"`
	TinNumber       string               `json:"tinNumber" binding:"required"`
	ContactEmail    *string              `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone    *string              `json:"contactPhone"`
	PhysicalAddress organization.Address `json:"physicalAddress"`

	NationalID     *string `json:"nationalId"`
	DriversLicense *string `json:"driversLicense"`
	PassportNumber *string `json:"passportNumber"`
	Gender         *string `json:"gender"`
	MaritalStatus  *string `json:"maritalStatus"`

	BrelaRegistrationNumber *string `json:"brelaRegistrationNumber"`
	CompanyDetailsURL       *string `json:"companyDetailsUrl"`
}

type CreateIndividualRequest struct {
	CustomerID     int64   `json:"customerId" binding:"required,gt=0"`
	NationalID     string  `json:"nationalId" binding:"required"`
	DriversLicense *string `json:"driversLicense"`
	PassportNumber *string `json:"passportNumber"`
	Gender         *string `json:"gender"`
	MaritalStatus  *string `json:"maritalStatus"`
}

type CreateCorporateRequest struct {
	CustomerID              int64   `json:"customerId" binding:"required,gt=0"`
	BrelaRegistrationNumber string  `json:"brelaRegistrationNumber" binding:"required"`
	CompanyDetailsURL       *string `json:"companyDetailsUrl"`
}

type CustomerResponse struct {
	ID              int64                `json:"id"`
	CustomerType    string               `json:"customerType"`
	LegalName       string               `json:"legalName"`
	ContactEmail    *string              `json:"contactEmail,omitempty"`
	ContactPhone    *string              `json:"contactPhone,omitempty"`
	PhysicalAddress organization.Address `json:"physicalAddress"`
	TinNumber       *string              `json:"tinNumber,omitempty"`
	Individual      *IndividualResponse  `json:"individual,omitempty"`
	Corporate       *CorporateResponse   `json:"corporate,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

type IndividualResponse struct {
	ID             int64   `json:"id"`
	CustomerID     int64   `json:"customerId"`
	NationalID     *string `json:"nationalId,omitempty"`
	DriversLicense *string `json:"driversLicense,omitempty"`
	PassportNumber *string `json:"passportNumber,omitempty"`
	Gender         *string `json:"gender,omitempty"`
	MaritalStatus  *string `json:"maritalStatus,omitempty"`
}

type CorporateResponse struct {
	ID                      int64   `json:"id"`
	CustomerID              int64   `json:"customerId"`
	BrelaRegistrationNumber *string `json:"brelaRegistrationNumber,omitempty"`
	CompanyDetailsURL       *string `json:"companyDetailsUrl,omitempty"`
}

type LinkResponse struct {
	CustomerID      int64   `json:"customerId"`
	OrganizationIDs []int64 `json:"organizationIds"`
}

func toResponse(c Customer) CustomerResponse {
	return CustomerResponse{
		ID:              c.ID,
		CustomerType:    c.CustomerType,
		LegalName:       c.LegalName,
		ContactEmail:    c.ContactEmail,
		ContactPhone:    c.ContactPhone,
		PhysicalAddress: c.PhysicalAddress.Data(),
		TinNumber:       c.TinNumber,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func toResponses(rows []Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(rows))
	for _, c := range rows {
		out = append(out, toResponse(c))
	}
	return out
}

func toIndividualResponse(ic IndividualCustomer) IndividualResponse {
	return IndividualResponse{
		ID:             ic.ID,
		CustomerID:     ic.CustomerID,
		NationalID:     ic.NationalID,
		DriversLicense: ic.DriversLicense,
		PassportNumber: ic.PassportNumber,
		Gender:         ic.Gender,
		MaritalStatus:  ic.MaritalStatus,
	}
}

func toCorporateResponse(cc CorporateCustomer) CorporateResponse {
	return CorporateResponse{
		ID:                      cc.ID,
		CustomerID:              cc.CustomerID,
		BrelaRegistrationNumber: cc.BrelaRegistrationNumber,
		CompanyDetailsURL:       cc.CompanyDetailsURL,
	}
}
