package auditlog

import (
	"time"

	"github.com/mmnete/bimasoft-backend/internal/shared/requestmeta"
)

type CreateAuditLogRequest struct {
	InsuranceEntityID int64  `json:"insuranceEntityId" binding:"required,gt=0"`
	EntityType        string `json:"entityType" binding:"required,oneof=company broker"`
	ActionType        string `json:"actionType" binding:"required"`
	ModifiedBy        string `json:"modifiedBy" binding:"required"`
	Geolocation       string `json:"geolocation"`
}

// MetadataInput describes an organization change to be recorded.
type MetadataInput struct {
	OrganizationID int64
	Action         string
	PerformedBy    string
	Client         requestmeta.ClientMeta
}

type AuditLogResponse struct {
	ID                int64     `json:"id"`
	InsuranceEntityID int64     `json:"insuranceEntityId"`
	EntityType        string    `json:"entityType"`
	ActionType        string    `json:"actionType"`
	ModifiedBy        string    `json:"modifiedBy"`
	IPAddress         string    `json:"ipAddress"`
	DeviceType        string    `json:"deviceType"`
	OperatingSystem   string    `json:"operatingSystem"`
	Browser           string    `json:"browser"`
	Geolocation       string    `json:"geolocation"`
	CreatedAt         time.Time `json:"createdAt"`
}

type MetadataResponse struct {
	ID              int64     `json:"id"`
	OrganizationID  int64     `json:"organizationId"`
	Action          string    `json:"action"`
	PerformedBy     string    `json:"performedBy"`
	IPAddress       string    `json:"ipAddress"`
	DeviceType      string    `json:"deviceType"`
	OperatingSystem string    `json:"operatingSystem"`
	Browser         string    `json:"browser"`
	Geolocation     string    `json:"geolocation"`
	CreatedAt       time.Time `json:"createdAt"`
}

func mapToResponse(l AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:                l.ID,
		InsuranceEntityID: l.InsuranceEntityID,
		EntityType:        l.EntityType,
		ActionType:        l.ActionType,
		ModifiedBy:        l.ModifiedBy,
		IPAddress:         l.IPAddress,
		DeviceType:        l.DeviceType,
		OperatingSystem:   l.OperatingSystem,
		Browser:           l.Browser,
		Geolocation:       l.Geolocation,
		CreatedAt:         l.CreatedAt,
	}
}

func mapToResponses(logs []AuditLog) []AuditLogResponse {
	out := make([]AuditLogResponse, len(logs))
	for i, l := range logs {
		out[i] = mapToResponse(l)
	}
	return out
}

func mapMetadataToResponse(m OrganizationMetadata) MetadataResponse {
	return MetadataResponse{
		ID:              m.ID,
		OrganizationID:  m.OrganizationID,
		Action:          m.Action,
		PerformedBy:     m.PerformedBy,
		IPAddress:       m.IPAddress,
		DeviceType:      m.DeviceType,
		OperatingSystem: m.OperatingSystem,
		Browser:         m.Browser,
		Geolocation:     m.Geolocation,
		CreatedAt:       m.CreatedAt,
	}
}
