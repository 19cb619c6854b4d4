package counter_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mmnete/bimasoft-backend/internal/shared/counter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepo(t *testing.T) (counter.Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)
	return counter.NewRepository(gdb), mock
}

func TestNextValue(t *testing.T) {
	t.Run("returns incremented value", func(t *testing.T) {
		repo, mock := setupRepo(t)
		mock.ExpectQuery(`INSERT INTO entity_counters .* ON CONFLICT \(entity_id, counter_type\) DO UPDATE .* RETURNING last_value`).
			WithArgs(int64(4), "policy_number").
			WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(12))

		next, err := repo.NextValue(context.Background(), 4, "policy_number")

		require.NoError(t, err)
		assert.Equal(t, int64(12), next)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates db error", func(t *testing.T) {
		repo, mock := setupRepo(t)
		mock.ExpectQuery(`INSERT INTO entity_counters`).WillReturnError(errors.New("db down"))

		next, err := repo.NextValue(context.Background(), 4, "policy_number")

		assert.Error(t, err)
		assert.Zero(t, next)
	})
}
