package local

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mmnete/bimasoft-backend/internal/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type providerDeps struct {
	provider *Provider
	sql      sqlmock.Sqlmock
	redis    redismock.ClientMock
	now      time.Time
}

func setupProvider(t *testing.T) *providerDeps {
	t.Helper()
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	rdb, redisMock := redismock.NewClientMock()
	p := NewProvider(gdb, rdb, "test-secret", time.Hour, zap.NewNop())
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return now }

	return &providerDeps{provider: p, sql: sqlMock, redis: redisMock, now: now}
}

func TestProvider_CreateIdentity(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		deps := setupProvider(t)
		deps.sql.ExpectExec(`INSERT INTO "identity_credentials"`).
			WithArgs(sqlmock.AnyArg(), "ops@acme.co.tz", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		id, err := deps.provider.CreateIdentity(context.Background(), " OPS@acme.co.tz ", "Acme Ops")

		require.NoError(t, err)
		assert.NotEmpty(t, id.SubjectID)
		assert.Len(t, id.GeneratedPassword, identity.DefaultPasswordLength)
		assert.NoError(t, deps.sql.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		deps := setupProvider(t)
		deps.sql.ExpectExec(`INSERT INTO "identity_credentials"`).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_identity_credentials_email"})

		_, err := deps.provider.CreateIdentity(context.Background(), "ops@acme.co.tz", "Acme Ops")

		assert.ErrorIs(t, err, identity.ErrAlreadyExists)
	})
}

func TestProvider_Authenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Secret!23abc"), bcrypt.MinCost)
	require.NoError(t, err)
	rows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"subject", "email", "password_hash", "created_at"}).
			AddRow("sub-1", "ops@acme.co.tz", string(hash), time.Now())
	}

	t.Run("success", func(t *testing.T) {
		deps := setupProvider(t)
		deps.sql.ExpectQuery(`SELECT \* FROM "identity_credentials" WHERE email = \$1`).
			WithArgs("ops@acme.co.tz", 1).
			WillReturnRows(rows())

		session, err := deps.provider.Authenticate(context.Background(), "ops@acme.co.tz", "Secret!23abc")

		require.NoError(t, err)
		assert.Equal(t, "sub-1", session.SubjectID)
		assert.NotEmpty(t, session.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		deps := setupProvider(t)
		deps.sql.ExpectQuery(`SELECT \* FROM "identity_credentials" WHERE email = \$1`).
			WillReturnRows(rows())

		_, err := deps.provider.Authenticate(context.Background(), "ops@acme.co.tz", "nope")

		assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		deps := setupProvider(t)
		deps.sql.ExpectQuery(`SELECT \* FROM "identity_credentials" WHERE email = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"subject"}))

		_, err := deps.provider.Authenticate(context.Background(), "ghost@acme.co.tz", "x")

		assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
	})
}

func TestProvider_VerifyToken(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		deps := setupProvider(t)
		token, err := deps.provider.generateToken("sub-1", "ops@acme.co.tz")
		require.NoError(t, err)
		deps.redis.ExpectGet(revokedKeyPrefix + "sub-1").RedisNil()

		subject, err := deps.provider.VerifyToken(context.Background(), token)

		require.NoError(t, err)
		assert.Equal(t, "sub-1", subject)
	})

	t.Run("revoked after issue", func(t *testing.T) {
		deps := setupProvider(t)
		token, err := deps.provider.generateToken("sub-1", "ops@acme.co.tz")
		require.NoError(t, err)
		deps.redis.ExpectGet(revokedKeyPrefix + "sub-1").
			SetVal(strconv.FormatInt(deps.now.UnixNano(), 10))

		_, err = deps.provider.VerifyToken(context.Background(), token)

		assert.ErrorIs(t, err, identity.ErrInvalidToken)
	})

	t.Run("issued after revoke", func(t *testing.T) {
		deps := setupProvider(t)
		token, err := deps.provider.generateToken("sub-1", "ops@acme.co.tz")
		require.NoError(t, err)
		deps.redis.ExpectGet(revokedKeyPrefix + "sub-1").
			SetVal(strconv.FormatInt(deps.now.Add(-time.Minute).UnixNano(), 10))

		subject, err := deps.provider.VerifyToken(context.Background(), token)

		require.NoError(t, err)
		assert.Equal(t, "sub-1", subject)
	})

	t.Run("tampered token", func(t *testing.T) {
		deps := setupProvider(t)
		_, err := deps.provider.VerifyToken(context.Background(), "not.a.token")
		assert.ErrorIs(t, err, identity.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		deps := setupProvider(t)
		token, err := deps.provider.generateToken("sub-1", "ops@acme.co.tz")
		require.NoError(t, err)
		deps.provider.now = func() time.Time { return deps.now.Add(2 * time.Hour) }

		_, err = deps.provider.VerifyToken(context.Background(), token)

		assert.ErrorIs(t, err, identity.ErrInvalidToken)
	})
}

func TestProvider_Revoke(t *testing.T) {
	deps := setupProvider(t)
	deps.redis.ExpectSet(revokedKeyPrefix+"sub-1", deps.now.UnixNano(), time.Hour).SetVal("OK")

	err := deps.provider.Revoke(context.Background(), "sub-1")

	require.NoError(t, err)
	assert.NoError(t, deps.redis.ExpectationsWereMet())
}

func TestProvider_DeleteIdentity(t *testing.T) {
	deps := setupProvider(t)
	deps.sql.ExpectExec(`DELETE FROM "identity_credentials" WHERE subject = \$1`).
		WithArgs("sub-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	deps.redis.ExpectSet(revokedKeyPrefix+"sub-1", deps.now.UnixNano(), time.Hour).SetVal("OK")

	err := deps.provider.DeleteIdentity(context.Background(), "sub-1")

	require.NoError(t, err)
	assert.NoError(t, deps.sql.ExpectationsWereMet())
	assert.NoError(t, deps.redis.ExpectationsWereMet())
}
