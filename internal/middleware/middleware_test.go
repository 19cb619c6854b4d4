package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/mmnete/bimasoft-backend/internal/access"
	"github.com/mmnete/bimasoft-backend/internal/identity"
	identitymock "github.com/mmnete/bimasoft-backend/internal/identity/mock"
	"github.com/mmnete/bimasoft-backend/internal/middleware"
	"github.com/mmnete/bimasoft-backend/internal/shared/contextutil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAccess(t *testing.T) access.Service {
	t.Helper()
	svc, err := access.NewService(map[string]string{
		"bo-key":     access.ClientBackoffice,
		"lookup-key": access.ClientLookup,
	}, zap.NewNop())
	require.NoError(t, err)
	return svc
}

func TestAPIKey(t *testing.T) {
	r := gin.New()
	api := r.Group("/api/v1", middleware.APIKey(newAccess(t)))
	api.GET("/users", func(c *gin.Context) {
		c.String(http.StatusOK, contextutil.GetClient(c.Request.Context()))
	})
	api.GET("/motor-details", func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		name       string
		path       string
		key        string
		wantStatus int
		wantBody   string
	}{
		{"missing key", "/api/v1/users", "", http.StatusForbidden, `{"message":"Forbidden"}`},
		{"unknown key", "/api/v1/users", "nope", http.StatusForbidden, `{"message":"Forbidden"}`},
		{"lookup key outside scope", "/api/v1/users", "lookup-key", http.StatusForbidden, `{"message":"Forbidden"}`},
		{"lookup key in scope", "/api/v1/motor-details", "lookup-key", http.StatusOK, ""},
		{"backoffice key", "/api/v1/users", "bo-key", http.StatusOK, access.ClientBackoffice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.key != "" {
				req.Header.Set(middleware.APIKeyHeader, tt.key)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, contextutil.GetRequestID(c.Request.Context()))
	})

	t.Run("propagates incoming id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "rid-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, "rid-1", w.Body.String())
		assert.Equal(t, "rid-1", w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("generates id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, w.Body.String())
		assert.Equal(t, w.Body.String(), w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("replaces oversized id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, strings.Repeat("x", 65))
		r.ServeHTTP(w, req)

		assert.Len(t, w.Body.String(), 36)
	})
}

func TestBearerSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := identitymock.NewMockProvider(ctrl)

	r := gin.New()
	r.GET("/me", middleware.BearerSession(provider), func(c *gin.Context) {
		c.String(http.StatusOK, contextutil.GetSubject(c.Request.Context()))
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Authorization token is required")
	})

	t.Run("invalid token", func(t *testing.T) {
		provider.EXPECT().VerifyToken(gomock.Any(), "bad").Return("", identity.ErrInvalidToken)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer bad")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid or expired token")
	})

	t.Run("valid token", func(t *testing.T) {
		provider.EXPECT().VerifyToken(gomock.Any(), "good").Return("sub-1", nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer good")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "sub-1", w.Body.String())
	})
}

func TestIdempotency(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	calls := 0

	r := gin.New()
	r.POST("/orgs", middleware.Idempotency(rdb), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	const cacheKey = "idemp:/orgs::k1"

	t.Run("first request stores response", func(t *testing.T) {
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, []byte(`{"status":201,"body":{"ok":true}}`), 24*time.Hour).SetVal("OK")
		mock.ExpectDel(cacheKey + ":lock").SetVal(1)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/orgs", nil)
		req.Header.Set(middleware.IdempotencyHeader, "k1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replay skips handler", func(t *testing.T) {
		mock.ExpectGet(cacheKey).SetVal(`{"status":201,"body":{"ok":true}}`)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/orgs", nil)
		req.Header.Set(middleware.IdempotencyHeader, "k1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replay"))
		assert.Equal(t, 1, calls)
	})

	t.Run("in-flight duplicate", func(t *testing.T) {
		mock.ExpectGet("idemp:/orgs::k2").RedisNil()
		mock.ExpectSetNX("idemp:/orgs::k2:lock", "locked", 30*time.Second).SetVal(false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/orgs", nil)
		req.Header.Set(middleware.IdempotencyHeader, "k2")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 1, calls)
	})

	t.Run("no key passes through", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/orgs", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 2, calls)
	})
}

func TestRateLimitByIP(t *testing.T) {
	r := gin.New()
	r.GET("/", middleware.RateLimitByIP(1, 1), func(c *gin.Context) { c.Status(http.StatusOK) })

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := middleware.NewHTTPMetrics(reg)

	r := gin.New()
	r.Use(middleware.Metrics(m))
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, id := range []string{"1", "2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/"+id, nil))
	}

	count, err := testutil.GatherAndCount(reg, "http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestContextLogger(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ContextLogger(zap.NewNop()))

	var got *zap.Logger
	r.GET("/", func(c *gin.Context) {
		got = contextutil.GetLogger(c.Request.Context(), nil)
		c.Status(http.StatusOK)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotNil(t, got)
}
