package user

import (
	"time"

	"github.com/mmnete/bimasoft-backend/internal/shared/crud"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"

	StatusActive = "active"
)

type User struct {
	ID                int64     `gorm:"column:id;primaryKey"`
	IdentityUID       string    `gorm:"column:identity_uid"`
	FullName          string    `gorm:"column:full_name"`
	Email             string    `gorm:"column:email"`
	PhoneNumber       *string   `gorm:"column:phone_number"`
	Role              string    `gorm:"column:role"`
	InsuranceEntityID int64     `gorm:"column:insurance_entity_id"`
	EntityType        string    `gorm:"column:entity_type"`
	Status            string    `gorm:"column:status"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

var Table = crud.Table{
	Name: "users",
	Columns: map[string]string{
		"identityUid":       "identity_uid",
		"fullName":          "full_name",
		"email":             "email",
		"phoneNumber":       "phone_number",
		"role":              "role",
		"insuranceEntityId": "insurance_entity_id",
		"entityType":        "entity_type",
		"status":            "status",
	},
	SearchColumns: []string{"full_name", "email", "phone_number"},
	UniqueColumns: []string{"email", "identity_uid"},
	Timestamps:    true,
}
