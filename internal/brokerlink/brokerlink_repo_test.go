package brokerlink_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mmnete/bimasoft-backend/internal/brokerlink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)
	return gdb, mock
}

func TestRepository_FindRelation(t *testing.T) {
	t.Run("linked", func(t *testing.T) {
		gdb, mock := openGorm(t)
		repo := brokerlink.NewRepository(gdb)
		mock.ExpectQuery(`SELECT \* FROM "brokers_companies" WHERE broker_id = \$1 AND company_id = \$2 LIMIT \$3`).
			WithArgs(int64(3), int64(42), 1).
			WillReturnRows(sqlmock.NewRows([]string{"broker_id", "company_id"}).AddRow(3, 42))

		rel, err := repo.FindRelation(context.Background(), 3, 42)

		require.NoError(t, err)
		require.NotNil(t, rel)
		assert.Equal(t, int64(42), rel.CompanyID)
	})

	t.Run("not linked", func(t *testing.T) {
		gdb, mock := openGorm(t)
		repo := brokerlink.NewRepository(gdb)
		mock.ExpectQuery(`SELECT \* FROM "brokers_companies"`).WillReturnRows(sqlmock.NewRows([]string{"broker_id"}))

		rel, err := repo.FindRelation(context.Background(), 3, 42)

		require.NoError(t, err)
		assert.Nil(t, rel)
	})
}

func TestRepository_Remove(t *testing.T) {
	gdb, mock := openGorm(t)
	repo := brokerlink.NewRepository(gdb)
	mock.ExpectExec(`DELETE FROM "brokers_companies" WHERE broker_id = \$1 AND company_id = \$2`).
		WithArgs(int64(3), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err := repo.Remove(context.Background(), 3, 42)

	require.NoError(t, err)
	assert.False(t, removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindCompaniesForBroker(t *testing.T) {
	gdb, mock := openGorm(t)
	repo := brokerlink.NewRepository(gdb)
	mock.ExpectQuery(`SELECT o\.\* FROM insurance_companies AS o JOIN brokers_companies AS bc ON bc\.company_id = o\.id WHERE bc\.broker_id = \$1 ORDER BY o\.id`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "legal_name"}).AddRow(42, "Acme Insurance"))

	rows, err := repo.FindCompaniesForBroker(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Acme Insurance", rows[0].LegalName)
}
