package auditlog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mmnete/bimasoft-backend/internal/auditlog"
	auditlogerrors "github.com/mmnete/bimasoft-backend/internal/auditlog/errors"
	auditMock "github.com/mmnete/bimasoft-backend/internal/auditlog/mock"
	"github.com/mmnete/bimasoft-backend/internal/shared/requestmeta"
	geoMock "github.com/mmnete/bimasoft-backend/internal/shared/requestmeta/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const chromeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

type serviceDeps struct {
	service  auditlog.Service
	repo     *auditMock.MockRepository
	metadata *auditMock.MockMetadataRepository
	geo      *geoMock.MockGeolocator
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	repo := auditMock.NewMockRepository(ctrl)
	metadata := auditMock.NewMockMetadataRepository(ctrl)
	geo := geoMock.NewMockGeolocator(ctrl)
	return &serviceDeps{
		service:  auditlog.NewService(repo, metadata, geo),
		repo:     repo,
		metadata: metadata,
		geo:      geo,
	}
}

func TestAuditLogService_Create(t *testing.T) {
	ctx := context.Background()
	req := auditlog.CreateAuditLogRequest{
		InsuranceEntityID: 1,
		EntityType:        "company",
		ActionType:        "update",
		ModifiedBy:        "Jane",
	}
	client := requestmeta.ClientMeta{IP: "41.59.1.1", UserAgent: chromeUA}

	t.Run("falls back to ip geolocation", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.geo.EXPECT().Lookup(ctx, "41.59.1.1").Return("Dar es Salaam, Tanzania")
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, l *auditlog.AuditLog) error {
			assert.Equal(t, "Dar es Salaam, Tanzania", l.Geolocation)
			assert.Equal(t, "Desktop", l.DeviceType)
			assert.Contains(t, l.Browser, "Chrome")
			l.ID = 5
			return nil
		})

		resp, err := deps.service.Create(ctx, req, client)

		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.ID)
	})

	t.Run("supplied geolocation wins", func(t *testing.T) {
		deps := setupServiceTest(t)
		withGeo := req
		withGeo.Geolocation = "Arusha"
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, l *auditlog.AuditLog) error {
			assert.Equal(t, "Arusha", l.Geolocation)
			return nil
		})

		_, err := deps.service.Create(ctx, withGeo, client)

		require.NoError(t, err)
	})

	t.Run("db error", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.geo.EXPECT().Lookup(ctx, gomock.Any()).Return("")
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db down"))

		_, err := deps.service.Create(ctx, req, client)

		assert.Error(t, err)
	})
}

func TestAuditLogService_GetByID(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	deps.repo.EXPECT().FindOne(ctx, int64(3)).Return(nil, nil)

	_, err := deps.service.GetByID(ctx, 3)

	assert.ErrorIs(t, err, auditlogerrors.ErrAuditLogNotFound)
}

func TestAuditLogService_RecordMetadata(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	deps.metadata.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, m *auditlog.OrganizationMetadata) error {
		assert.Equal(t, int64(9), m.OrganizationID)
		assert.Equal(t, "created", m.Action)
		assert.Equal(t, requestmeta.UnknownIP, m.IPAddress)
		assert.Equal(t, requestmeta.UnknownDevice, m.DeviceType)
		assert.Equal(t, "Mwanza", m.Geolocation)
		return nil
	})

	err := deps.service.RecordMetadata(ctx, auditlog.MetadataInput{
		OrganizationID: 9,
		Action:         "created",
		PerformedBy:    "Jane",
		Client:         requestmeta.ClientMeta{Geolocation: "Mwanza"},
	})

	assert.NoError(t, err)
}

func TestAuditLogService_GetOrganizationMetadata(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	deps.metadata.EXPECT().FindByOrganization(ctx, int64(9)).
		Return([]auditlog.OrganizationMetadata{{ID: 1, OrganizationID: 9, Action: "created"}}, nil)

	resp, err := deps.service.GetOrganizationMetadata(ctx, 9)

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "created", resp[0].Action)
}
