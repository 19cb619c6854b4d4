package events

import "time"

const (
	OrganizationOnboardedTopic = "bimasoft.organization.onboarded.v1"
	OrganizationOnboardedType  = "organization_onboarded"
)

// OrganizationOnboardedEvent is published once an organization and its
// admin user are committed.
type OrganizationOnboardedEvent struct {
	EventType        string    `json:"event_type"`
	RequestID        string    `json:"request_id,omitempty"`
	OrganizationID   int64     `json:"organization_id"`
	OrganizationType string    `json:"organization_type"`
	LegalName        string    `json:"legal_name"`
	ContactEmail     string    `json:"contact_email"`
	Address          string    `json:"address"`
	AdminEmail       string    `json:"admin_email"`
	OccurredAt       time.Time `json:"occurred_at"`
}
