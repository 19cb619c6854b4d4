package auditlog

import (
	"context"

	auditlogerrors "github.com/mmnete/bimasoft-backend/internal/auditlog/errors"
	"github.com/mmnete/bimasoft-backend/internal/shared/contextutil"
	"github.com/mmnete/bimasoft-backend/internal/shared/requestmeta"
	"github.com/mmnete/bimasoft-backend/internal/shared/sanitize"
	"go.uber.org/zap"
)

//go:generate mockgen -source=auditlog_service.go -destination=mock/auditlog_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateAuditLogRequest, client requestmeta.ClientMeta) (AuditLogResponse, error)
	GetAll(ctx context.Context) ([]AuditLogResponse, error)
	GetByID(ctx context.Context, id int64) (AuditLogResponse, error)
	GetByEntity(ctx context.Context, entityID int64, entityType string) ([]AuditLogResponse, error)
	RecordMetadata(ctx context.Context, in MetadataInput) error
	GetOrganizationMetadata(ctx context.Context, organizationID int64) ([]MetadataResponse, error)
}

type service struct {
	repo       Repository
	metadata   MetadataRepository
	geolocator requestmeta.Geolocator
	logger     *zap.Logger
}

// NewService wires the audit trail. geolocator may be nil, in which case
// only caller supplied locations are stored.
func NewService(repo Repository, metadata MetadataRepository, geolocator requestmeta.Geolocator, logger ...*zap.Logger) Service {
	l := zap.L().Named("auditlog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auditlog.service")
	}
	return &service{repo: repo, metadata: metadata, geolocator: geolocator, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateAuditLogRequest, client requestmeta.ClientMeta) (AuditLogResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	device := requestmeta.ParseUserAgent(client.UserAgent)

	entry := &AuditLog{
		InsuranceEntityID: req.InsuranceEntityID,
		EntityType:        req.EntityType,
		ActionType:        sanitize.Text(req.ActionType),
		ModifiedBy:        sanitize.Text(req.ModifiedBy),
		IPAddress:         client.IP,
		DeviceType:        device.DeviceType,
		OperatingSystem:   device.OperatingSystem,
		Browser:           device.Browser,
		Geolocation:       s.locate(ctx, sanitize.Text(req.Geolocation), client.IP),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Error("create audit log failed", zap.String("request_id", rid), zap.Error(err))
		return AuditLogResponse{}, err
	}

	s.logger.Info("audit log recorded",
		zap.String("request_id", rid),
		zap.Int64("audit_log_id", entry.ID),
		zap.String("action_type", entry.ActionType),
	)
	return mapToResponse(*entry), nil
}

func (s *service) GetAll(ctx context.Context) ([]AuditLogResponse, error) {
	logs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToResponses(logs), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (AuditLogResponse, error) {
	entry, err := s.repo.FindOne(ctx, id)
	if err != nil {
		return AuditLogResponse{}, err
	}
	if entry == nil {
		return AuditLogResponse{}, auditlogerrors.ErrAuditLogNotFound
	}
	return mapToResponse(*entry), nil
}

func (s *service) GetByEntity(ctx context.Context, entityID int64, entityType string) ([]AuditLogResponse, error) {
	logs, err := s.repo.FindByEntity(ctx, entityID, entityType)
	if err != nil {
		return nil, err
	}
	return mapToResponses(logs), nil
}

// RecordMetadata stores the caller's device details for an organization
// change. Geolocation is only what the caller supplied.
func (s *service) RecordMetadata(ctx context.Context, in MetadataInput) error {
	device := requestmeta.ParseUserAgent(in.Client.UserAgent)
	ip := in.Client.IP
	if ip == "" {
		ip = requestmeta.UnknownIP
	}
	return s.metadata.Create(ctx, &OrganizationMetadata{
		OrganizationID:  in.OrganizationID,
		Action:          in.Action,
		PerformedBy:     sanitize.Text(in.PerformedBy),
		IPAddress:       ip,
		DeviceType:      device.DeviceType,
		OperatingSystem: device.OperatingSystem,
		Browser:         device.Browser,
		Geolocation:     sanitize.Text(in.Client.Geolocation),
	})
}

func (s *service) GetOrganizationMetadata(ctx context.Context, organizationID int64) ([]MetadataResponse, error) {
	rows, err := s.metadata.FindByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	out := make([]MetadataResponse, len(rows))
	for i, m := range rows {
		out[i] = mapMetadataToResponse(m)
	}
	return out, nil
}

func (s *service) locate(ctx context.Context, supplied, ip string) string {
	if supplied != "" || s.geolocator == nil {
		return supplied
	}
	return s.geolocator.Lookup(ctx, ip)
}
