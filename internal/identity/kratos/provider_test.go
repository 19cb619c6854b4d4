package kratos_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mmnete/bimasoft-backend/internal/identity"
	"github.com/mmnete/bimasoft-backend/internal/identity/kratos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProvider_CreateIdentity(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/identities", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"kr-1","schema_id":"default","schema_url":"","traits":{}}`))
	}))
	defer srv.Close()

	p := kratos.NewProvider(srv.URL, srv.URL, "", zap.NewNop())
	id, err := p.CreateIdentity(context.Background(), "ops@acme.co.tz", "Acme Ops")

	require.NoError(t, err)
	assert.Equal(t, "kr-1", id.SubjectID)
	assert.True(t, identity.IsGeneratedPassword(id.GeneratedPassword))
	assert.Equal(t, "default", received["schema_id"])
}

func TestProvider_CreateIdentity_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":{"code":409,"message":"exists"}}`))
	}))
	defer srv.Close()

	p := kratos.NewProvider(srv.URL, srv.URL, "default", zap.NewNop())
	_, err := p.CreateIdentity(context.Background(), "ops@acme.co.tz", "Acme Ops")

	assert.ErrorIs(t, err, identity.ErrAlreadyExists)
}

func TestProvider_VerifyToken_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "bad", r.Header.Get("X-Session-Token"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"code":401,"message":"no session"}}`))
	}))
	defer srv.Close()

	p := kratos.NewProvider(srv.URL, srv.URL, "default", zap.NewNop())
	_, err := p.VerifyToken(context.Background(), "bad")

	assert.ErrorIs(t, err, identity.ErrInvalidToken)
}

func TestProvider_DeleteIdentity_MissingIsNoop(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	p := kratos.NewProvider(srv.URL, srv.URL, "default", zap.NewNop())
	assert.NoError(t, p.DeleteIdentity(context.Background(), "kr-1"))
}
