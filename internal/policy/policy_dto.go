package policy

import (
	"time"

	policyerrors "github.com/mmnete/bimasoft-backend/internal/policy/errors"
	"gorm.io/datatypes"
)

type CreatePolicyRequest struct {
	// PolicyNumber is generated from the issuing entity's counter when empty.
	PolicyNumber      string               `json:"policyNumber"`
	CustomerID        int64                `json:"customerId" binding:"required,gt=0"`
	InsuranceEntityID int64                `json:"insuranceEntityId" binding:"required,gt=0"`
	EntityType        string               `json:"entityType" binding:"required,oneof=company broker"`
	PolicyType        string               `json:"policyType" binding:"required"`
	StartDate         string               `json:"startDate" binding:"required"`
	EndDate           string               `json:"endDate" binding:"required"`
	PremiumAmount     float64              `json:"premiumAmount" binding:"gte=0"`
	Status            string               `json:"status"`
	Motor             *MotorDetailsRequest `json:"motor"`
}

// MotorDetailsRequest creates the motor row together with its policy.
type MotorDetailsRequest struct {
	VehicleRegistrationNumber string  `json:"vehicleRegistrationNumber" binding:"required"`
	Make                      string  `json:"make" binding:"required"`
	Model                     string  `json:"model" binding:"required"`
	YearOfManufacture         *int    `json:"yearOfManufacture"`
	ChassisNumber             *string `json:"chassisNumber"`
	EngineNumber              *string `json:"engineNumber"`
}

type CreateMotorPolicyRequest struct {
	PolicyID int64 `json:"policyId" binding:"required,gt=0"`
	MotorDetailsRequest
}

type PolicyResponse struct {
	ID                int64                `json:"id"`
	PolicyNumber      string               `json:"policyNumber"`
	CustomerID        int64                `json:"customerId"`
	InsuranceEntityID int64                `json:"insuranceEntityId"`
	EntityType        string               `json:"entityType"`
	PolicyType        string               `json:"policyType"`
	StartDate         string               `json:"startDate"`
	EndDate           string               `json:"endDate"`
	PremiumAmount     float64              `json:"premiumAmount"`
	Status            string               `json:"status"`
	Motor             *MotorPolicyResponse `json:"motor,omitempty"`
	CreatedAt         time.Time            `json:"createdAt"`
	UpdatedAt         time.Time            `json:"updatedAt"`
}

type MotorPolicyResponse struct {
	ID                        int64   `json:"id"`
	PolicyID                  int64   `json:"policyId"`
	VehicleRegistrationNumber string  `json:"vehicleRegistrationNumber"`
	Make                      string  `json:"make"`
	Model                     string  `json:"model"`
	YearOfManufacture         *int    `json:"yearOfManufacture,omitempty"`
	ChassisNumber             *string `json:"chassisNumber,omitempty"`
	EngineNumber              *string `json:"engineNumber,omitempty"`
}

func parseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return datatypes.Date{}, policyerrors.ErrInvalidDate
	}
	return datatypes.Date(t), nil
}

func formatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}

func toResponse(p Policy) PolicyResponse {
	return PolicyResponse{
		ID:                p.ID,
		PolicyNumber:      p.PolicyNumber,
		CustomerID:        p.CustomerID,
		InsuranceEntityID: p.InsuranceEntityID,
		EntityType:        p.EntityType,
		PolicyType:        p.PolicyType,
		StartDate:         formatDate(p.StartDate),
		EndDate:           formatDate(p.EndDate),
		PremiumAmount:     p.PremiumAmount,
		Status:            p.Status,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func toResponses(rows []Policy) []PolicyResponse {
	out := make([]PolicyResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, toResponse(p))
	}
	return out
}

func toMotorResponse(m MotorPolicy) MotorPolicyResponse {
	return MotorPolicyResponse{
		ID:                        m.ID,
		PolicyID:                  m.PolicyID,
		VehicleRegistrationNumber: m.VehicleRegistrationNumber,
		Make:                      m.Make,
		Model:                     m.Model,
		YearOfManufacture:         m.YearOfManufacture,
		ChassisNumber:             m.ChassisNumber,
		EngineNumber:              m.EngineNumber,
	}
}

func toMotorResponses(rows []MotorPolicy) []MotorPolicyResponse {
	out := make([]MotorPolicyResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, toMotorResponse(m))
	}
	return out
}
