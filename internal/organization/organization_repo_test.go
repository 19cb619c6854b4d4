package organization_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mmnete/bimasoft-backend/internal/organization"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepo(t *testing.T, orgType string) (organization.Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)
	return organization.NewRepository(gdb, orgType), mock
}

func TestRepository_FindPending(t *testing.T) {
	repo, mock := setupRepo(t, organization.TypeBroker)
	now := time.Now()

	mock.ExpectQuery(`SELECT o\.\*, m\.performed_by.* FROM insurance_brokers AS o LEFT JOIN organization_metadata m ON m\.organization_id = o\.id AND m\.action = \$1 WHERE o\.account_status = \$2 ORDER BY o\.id`).
		WithArgs(organization.MetadataActionCreated, organization.StatusPendingApproval).
		WillReturnRows(sqlmock.NewRows([]string{"id", "legal_name", "account_status", "performed_by", "ip_address", "recorded_at"}).
			AddRow(3, "Beta Brokers", "pending_approval", "Jane", "10.0.0.1", now))

	rows, err := repo.FindPending(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Beta Brokers", rows[0].LegalName)
	require.NotNil(t, rows[0].PerformedBy)
	assert.Equal(t, "Jane", *rows[0].PerformedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Approve(t *testing.T) {
	t.Run("returns updated row", func(t *testing.T) {
		repo, mock := setupRepo(t, "")
		mock.ExpectQuery(`UPDATE "organizations" SET .* WHERE id = \$\d+ RETURNING \*`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "legal_name", "account_status"}).
				AddRow(5, "Acme Insurance", "approved"))

		org, err := repo.Approve(context.Background(), 5)

		require.NoError(t, err)
		require.NotNil(t, org)
		assert.Equal(t, organization.StatusApproved, org.AccountStatus)
	})

	t.Run("missing id", func(t *testing.T) {
		repo, mock := setupRepo(t, "")
		mock.ExpectQuery(`UPDATE "organizations" SET .* RETURNING \*`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		org, err := repo.Approve(context.Background(), 404)

		require.NoError(t, err)
		assert.Nil(t, org)
	})
}
