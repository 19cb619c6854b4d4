package auditlog

import (
	"time"

	"github.com/mmnete/bimasoft-backend/internal/shared/crud"
)

// AuditLog records an action taken against a company or broker. Rows are
// append-only.
type AuditLog struct {
	ID                int64     `gorm:"column:id;primaryKey"`
	InsuranceEntityID int64     `gorm:"column:insurance_entity_id"`
	EntityType        string    `gorm:"column:entity_type"`
	ActionType        string    `gorm:"column:action_type"`
	ModifiedBy        string    `gorm:"column:modified_by"`
	IPAddress         string    `gorm:"column:ip_address"`
	DeviceType        string    `gorm:"column:device_type"`
	OperatingSystem   string    `gorm:"column:operating_system"`
	Browser           string    `gorm:"column:browser"`
	Geolocation       string    `gorm:"column:geolocation"`
	CreatedAt         time.Time `gorm:"column:created_at"`
}

// OrganizationMetadata captures who created or changed an organization and
// from where.
type OrganizationMetadata struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	OrganizationID  int64     `gorm:"column:organization_id"`
	Action          string    `gorm:"column:action"`
	PerformedBy     string    `gorm:"column:performed_by"`
	IPAddress       string    `gorm:"column:ip_address"`
	DeviceType      string    `gorm:"column:device_type"`
	OperatingSystem string    `gorm:"column:operating_system"`
	Browser         string    `gorm:"column:browser"`
	Geolocation     string    `gorm:"column:geolocation"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

var auditTable = crud.Table{
	Name: "insurance_entity_audit_logs",
	Columns: map[string]string{
		"insuranceEntityId": "insurance_entity_id",
		"entityType":        "entity_type",
		"actionType":        "action_type",
	},
}

var metadataTable = crud.Table{
	Name: "organization_metadata",
	Columns: map[string]string{
		"organizationId": "organization_id",
		"action":         "action",
	},
}
