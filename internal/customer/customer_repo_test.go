package customer_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mmnete/bimasoft-backend/internal/customer"
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

func TestRepository_FindDuplicate(t *testing.T) {
	t.Run("joins individual national ids", func(t *testing.T) {
		gdb, mock := openGorm(t)
		repo := customer.NewRepository(gdb)

		mock.ExpectQuery(`SELECT c\.\* FROM customers AS c LEFT JOIN individual_customers AS i ON i\.customer_id = c\.id WHERE \(c\.legal_name = NULLIF\(\$1, ''\) OR c\.tin_number = NULLIF\(\$2, ''\) OR i\.national_id = NULLIF\(\$3, ''\)\) AND c\.id <> \$4 ORDER BY c\.id`).
			WithArgs("Juma Hassan", "TIN-9", "NID-1", int64(5), 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "customer_type", "legal_name"}).AddRow(6, "individual", "Juma Hassan"))

		c, err := repo.FindDuplicate(context.Background(), "Juma Hassan", "TIN-9", "NID-1", 5)

		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, int64(6), c.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("all empty issues no query", func(t *testing.T) {
		gdb, mock := openGorm(t)
		repo := customer.NewRepository(gdb)

		c, err := repo.FindDuplicate(context.Background(), "", "", "", 0)

		require.NoError(t, err)
		assert.Nil(t, c)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no match", func(t *testing.T) {
		gdb, mock := openGorm(t)
		repo := customer.NewRepository(gdb)
		mock.ExpectQuery(`SELECT c\.\* FROM customers AS c`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

		c, err := repo.FindDuplicate(context.Background(), "Nobody", "", "", 0)

		require.NoError(t, err)
		assert.Nil(t, c)
	})
}

func TestRepository_FindByOrganization(t *testing.T) {
	gdb, mock := openGorm(t)
	repo := customer.NewRepository(gdb)

	mock.ExpectQuery(`SELECT c\.\* FROM customers AS c JOIN customers_organizations AS co ON co\.customer_id = c\.id WHERE co\.organization_id = \$1 ORDER BY c\.id`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "legal_name"}).AddRow(1, "Juma Hassan").AddRow(2, "Kilimo Ltd"))

	rows, err := repo.FindByOrganization(context.Background(), 42)

	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLinkRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("link ignores an existing pair", func(t *testing.T) {
		gdb, mock := openGorm(t)
		repo := customer.NewLinkRepository(gdb)
		mock.ExpectExec(`INSERT INTO "customers_organizations" .* ON CONFLICT DO NOTHING`).
			WithArgs(int64(3), int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, repo.Link(ctx, 3, 42))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unlink reports removal", func(t *testing.T) {
		gdb, mock := openGorm(t)
		repo := customer.NewLinkRepository(gdb)
		mock.ExpectExec(`DELETE FROM "customers_organizations" WHERE customer_id = \$1 AND organization_id = \$2`).
			WithArgs(int64(3), int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		removed, err := repo.Unlink(ctx, 3, 42)

		require.NoError(t, err)
		assert.True(t, removed)
	})

	t.Run("organizations of a customer", func(t *testing.T) {
		gdb, mock := openGorm(t)
		repo := customer.NewLinkRepository(gdb)
		mock.ExpectQuery(`SELECT "organization_id" FROM "customers_organizations" WHERE customer_id = \$1 ORDER BY organization_id`).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"organization_id"}).AddRow(1).AddRow(42))

		ids, err := repo.FindOrganizations(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, []int64{1, 42}, ids)
	})
}
