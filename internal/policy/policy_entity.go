package policy

import (
	"fmt"
	"strings"
	"time"

	"github.com/mmnete/bimasoft-backend/internal/shared/crud"
	"gorm.io/datatypes"
)

const (
	StatusActive = "active"

	DateLayout = "2006-01-02"

	counterPrefix = "policy:"
)

type Policy struct {
	ID                int64          `gorm:"column:id;primaryKey"`
	PolicyNumber      string         `gorm:"column:policy_number"`
	CustomerID        int64          `gorm:"column:customer_id"`
	InsuranceEntityID int64          `gorm:"column:insurance_entity_id"`
	EntityType        string         `gorm:"column:entity_type"`
	PolicyType        string         `gorm:"column:policy_type"`
	StartDate         datatypes.Date `gorm:"column:start_date"`
	EndDate           datatypes.Date `gorm:"column:end_date"`
	PremiumAmount     float64        `gorm:"column:premium_amount"`
	Status            string         `gorm:"column:status"`
	CreatedAt         time.Time      `gorm:"column:created_at"`
	UpdatedAt         time.Time      `gorm:"column:updated_at"`
}

type MotorPolicy struct {
	ID                        int64   `gorm:"column:id;primaryKey"`
	PolicyID                  int64   `gorm:"column:policy_id"`
	VehicleRegistrationNumber string  `gorm:"column:vehicle_registration_number"`
	Make                      string  `gorm:"column:make"`
	Model                     string  `gorm:"column:model"`
	YearOfManufacture         *int    `gorm:"column:year_of_manufacture"`
	ChassisNumber             *string `gorm:"column:chassis_number"`
	EngineNumber              *string `gorm:"column:engine_number"`
}

var policyTable = crud.Table{
	Name: "policies",
	Columns: map[string]string{
		"policyNumber":      "policy_number",
		"customerId":        "customer_id",
		"insuranceEntityId": "insurance_entity_id",
		"entityType":        "entity_type",
		"policyType":        "policy_type",
		"startDate":         "start_date",
		"endDate":           "end_date",
		"premiumAmount":     "premium_amount",
		"status":            "status",
	},
	SearchColumns: []string{"policy_number", "policy_type"},
	UniqueColumns: []string{"policy_number"},
	Timestamps:    true,
}

var motorTable = crud.Table{
	Name: "motor_policies",
	Columns: map[string]string{
		"policyId":                  "policy_id",
		"vehicleRegistrationNumber": "vehicle_registration_number",
		"make":                      "make",
		"model":                     "model",
		"yearOfManufacture":         "year_of_manufacture",
		"chassisNumber":             "chassis_number",
		"engineNumber":              "engine_number",
	},
	SearchColumns: []string{"vehicle_registration_number", "make", "model"},
	UniqueColumns: []string{"policy_id"},
}

// FormatNumber renders a generated policy number, e.g. POL-C42-000007 for
// the seventh policy issued by company 42.
func FormatNumber(entityType string, entityID, seq int64) string {
	prefix := "X"
	if entityType != "" {
		prefix = strings.ToUpper(entityType[:1])
	}
	return fmt.Sprintf("POL-%s%d-%06d", prefix, entityID, seq)
}
