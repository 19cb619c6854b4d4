package crud_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mmnete/bimasoft-backend/internal/shared/crud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type widget struct {
	ID    int64  `gorm:"column:id;primaryKey"`
	Name  string `gorm:"column:name"`
	Email string `gorm:"column:email"`
}

var widgets = crud.Table{
	Name:          "widgets",
	Columns:       map[string]string{"name": "name", "email": "email"},
	SearchColumns: []string{"name", "email"},
	UniqueColumns: []string{"name", "email"},
}

func setupRepo(t *testing.T) (crud.Repository[widget], sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })
	return crud.NewRepository[widget](gdb, widgets), mock, db
}

func TestRepository_Create(t *testing.T) {
	repo, mock, _ := setupRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "widgets" ("name","email") VALUES ($1,$2) RETURNING "id"`)).
		WithArgs("acme", "a@acme.co").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	w := &widget{Name: "acme", Email: "a@acme.co"}
	err := repo.Create(context.Background(), w)

	require.NoError(t, err)
	assert.Equal(t, int64(7), w.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindOne(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock, _ := setupRepo(t)
		mock.ExpectQuery(`SELECT \* FROM "widgets" WHERE id = \$1 LIMIT \$2`).
			WithArgs(int64(3), 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).AddRow(3, "acme", "a@acme.co"))

		w, err := repo.FindOne(context.Background(), 3)

		require.NoError(t, err)
		require.NotNil(t, w)
		assert.Equal(t, "acme", w.Name)
	})

	t.Run("not found is not an error", func(t *testing.T) {
		repo, mock, _ := setupRepo(t)
		mock.ExpectQuery(`SELECT \* FROM "widgets" WHERE id = \$1 LIMIT \$2`).
			WithArgs(int64(99), 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}))

		w, err := repo.FindOne(context.Background(), 99)

		assert.NoError(t, err)
		assert.Nil(t, w)
	})
}

func TestRepository_Update(t *testing.T) {
	t.Run("empty patch issues no query", func(t *testing.T) {
		repo, mock, _ := setupRepo(t)

		w, err := repo.Update(context.Background(), 1, map[string]any{})

		assert.Nil(t, w)
		assert.ErrorIs(t, err, crud.ErrNoFieldsToUpdate)
		assert.EqualError(t, err, "No fields to update")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown key is rejected", func(t *testing.T) {
		repo, mock, _ := setupRepo(t)

		_, err := repo.Update(context.Background(), 1, map[string]any{"name": "x", "id; DROP TABLE": 1})

		var invalid *crud.InvalidFieldError
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, "id; DROP TABLE", invalid.Field)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("updates allow-listed columns and reloads", func(t *testing.T) {
		repo, mock, _ := setupRepo(t)
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "widgets" SET "name"=$1 WHERE id = $2`)).
			WithArgs("renamed", int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`SELECT \* FROM "widgets" WHERE id = \$1 LIMIT \$2`).
			WithArgs(int64(4), 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).AddRow(4, "renamed", "a@acme.co"))

		w, err := repo.Update(context.Background(), 4, map[string]any{"name": "renamed"})

		require.NoError(t, err)
		assert.Equal(t, "renamed", w.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row returns nil", func(t *testing.T) {
		repo, mock, _ := setupRepo(t)
		mock.ExpectExec(`UPDATE "widgets" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		w, err := repo.Update(context.Background(), 40, map[string]any{"email": "x@y.z"})

		assert.NoError(t, err)
		assert.Nil(t, w)
	})
}

func TestRepository_Delete_MissingIsNoop(t *testing.T) {
	repo, mock, _ := setupRepo(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "widgets" WHERE id = $1`)).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 404)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Search(t *testing.T) {
	repo, mock, _ := setupRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "widgets" WHERE name ILIKE $1 OR email ILIKE $2 ORDER BY id`)).
		WithArgs(`%50\%%`, `%50\%%`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).AddRow(1, "50% Cover", ""))

	rows, err := repo.Search(context.Background(), "50%")

	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestRepository_FindBy(t *testing.T) {
	t.Run("rejects columns outside the allow-list", func(t *testing.T) {
		repo, _, _ := setupRepo(t)

		_, err := repo.FindBy(context.Background(), "password", "x")

		assert.EqualError(t, err, "Invalid field: password")
	})

	t.Run("filters by column", func(t *testing.T) {
		repo, mock, _ := setupRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "widgets" WHERE email = $1 ORDER BY id`)).
			WithArgs("a@acme.co").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).AddRow(1, "acme", "a@acme.co"))

		rows, err := repo.FindBy(context.Background(), "email", "a@acme.co")

		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})
}

func TestRepository_FindByUniqueFields(t *testing.T) {
	t.Run("or-combined and excludes self", func(t *testing.T) {
		repo, mock, _ := setupRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "widgets" WHERE (email = $1 OR name = $2) AND id <> $3 ORDER BY id LIMIT $4`)).
			WithArgs("a@acme.co", "acme", int64(2), 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).AddRow(5, "acme", "other@acme.co"))

		w, err := repo.FindByUniqueFields(context.Background(), map[string]any{"name": "acme", "email": "a@acme.co"}, 2)

		require.NoError(t, err)
		require.NotNil(t, w)
		assert.Equal(t, int64(5), w.ID)
	})

	t.Run("all values empty skips the query", func(t *testing.T) {
		repo, mock, _ := setupRepo(t)

		w, err := repo.FindByUniqueFields(context.Background(), map[string]any{"name": " "}, 0)

		assert.NoError(t, err)
		assert.Nil(t, w)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_WithTx(t *testing.T) {
	repo, mock, db := setupRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "widgets"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectRollback()

	tx, err := db.Begin()
	require.NoError(t, err)

	err = repo.WithTx(tx).Create(context.Background(), &widget{Name: "tx"})
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	assert.NoError(t, mock.ExpectationsWereMet())
}
