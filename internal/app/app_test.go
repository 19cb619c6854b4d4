package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newHealthApp(t *testing.T) (*App, sqlmock.Sqlmock, redismock.ClientMock) {
	t.Helper()
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rdb, redisMock := redismock.NewClientMock()
	return &App{DB: db, Redis: rdb, logger: zap.NewNop()}, dbMock, redisMock
}

func serveHealth(a *App) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/healthz", a.health)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	return w
}

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		a, dbMock, redisMock := newHealthApp(t)
		dbMock.ExpectPing()
		redisMock.ExpectPing().SetVal("PONG")

		w := serveHealth(a)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"redis":"up"`)
		assert.NoError(t, dbMock.ExpectationsWereMet())
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("redis down", func(t *testing.T) {
		a, dbMock, redisMock := newHealthApp(t)
		dbMock.ExpectPing()
		redisMock.ExpectPing().SetErr(errors.New("connection refused"))

		w := serveHealth(a)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"redis":"down"`)
		assert.Contains(t, w.Body.String(), `"database":"up"`)
	})

	t.Run("database down", func(t *testing.T) {
		a, dbMock, redisMock := newHealthApp(t)
		dbMock.ExpectPing().WillReturnError(errors.New("no route"))
		redisMock.ExpectPing().SetVal("PONG")

		w := serveHealth(a)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"database":"down"`)
	})
}
