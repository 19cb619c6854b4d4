package organization_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mmnete/bimasoft-backend/internal/organization"
	organizationerrors "github.com/mmnete/bimasoft-backend/internal/organization/errors"
	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrganizationService struct {
	orgType      string
	GetAllFn     func(ctx context.Context) ([]organization.OrganizationResponse, error)
	GetByIDFn    func(ctx context.Context, id int64) (organization.OrganizationResponse, error)
	SearchFn     func(ctx context.Context, query string) ([]organization.OrganizationResponse, error)
	GetPendingFn func(ctx context.Context) ([]organization.PendingOrganizationResponse, error)
	UpdateFn     func(ctx context.Context, id int64, patch map[string]any) (organization.OrganizationResponse, error)
	DeleteFn     func(ctx context.Context, id int64) error
}

func (f *fakeOrganizationService) Type() string { return f.orgType }
func (f *fakeOrganizationService) GetAll(ctx context.Context) ([]organization.OrganizationResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeOrganizationService) GetByID(ctx context.Context, id int64) (organization.OrganizationResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeOrganizationService) Search(ctx context.Context, query string) ([]organization.OrganizationResponse, error) {
	return f.SearchFn(ctx, query)
}
func (f *fakeOrganizationService) GetPending(ctx context.Context) ([]organization.PendingOrganizationResponse, error) {
	return f.GetPendingFn(ctx)
}
func (f *fakeOrganizationService) Update(ctx context.Context, id int64, patch map[string]any) (organization.OrganizationResponse, error) {
	return f.UpdateFn(ctx, id, patch)
}
func (f *fakeOrganizationService) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func newContext(method, target, body string, params ...gin.Param) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	return c, w
}

func TestOrganizationHandler_GetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeOrganizationService{
			orgType: organization.TypeCompany,
			GetByIDFn: func(ctx context.Context, id int64) (organization.OrganizationResponse, error) {
				assert.Equal(t, int64(7), id)
				return organization.OrganizationResponse{ID: 7, LegalName: "Acme Insurance"}, nil
			},
		}
		c, w := newContext(http.MethodGet, "/insurance/companies/7", "", gin.Param{Key: "id", Value: "7"})

		organization.NewHandler(svc).GetByID(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decode(t, w)
		assert.True(t, env.Success)
		assert.Contains(t, string(env.Data), "Acme Insurance")
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := &fakeOrganizationService{orgType: organization.TypeCompany}
		c, w := newContext(http.MethodGet, "/insurance/companies/abc", "", gin.Param{Key: "id", Value: "abc"})

		organization.NewHandler(svc).GetByID(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeOrganizationService{
			orgType: organization.TypeBroker,
			GetByIDFn: func(ctx context.Context, id int64) (organization.OrganizationResponse, error) {
				return organization.OrganizationResponse{}, organizationerrors.ErrBrokerNotFound
			},
		}
		c, w := newContext(http.MethodGet, "/insurance/brokers/7", "", gin.Param{Key: "id", Value: "7"})

		organization.NewHandler(svc).GetByID(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decode(t, w)
		assert.False(t, env.Success)
		assert.Equal(t, "Broker not found", env.Message)
	})
}

func TestOrganizationHandler_Search(t *testing.T) {
	svc := &fakeOrganizationService{
		orgType: organization.TypeCompany,
		SearchFn: func(ctx context.Context, query string) ([]organization.OrganizationResponse, error) {
			if query == "" {
				return nil, apperror.ErrSearchQueryRequired
			}
			return []organization.OrganizationResponse{{ID: 1}}, nil
		},
	}

	t.Run("missing query", func(t *testing.T) {
		c, w := newContext(http.MethodGet, "/insurance/companies/search", "")

		organization.NewHandler(svc).Search(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Search query is required", decode(t, w).Message)
	})

	t.Run("success", func(t *testing.T) {
		c, w := newContext(http.MethodGet, "/insurance/companies/search?query=acme", "")

		organization.NewHandler(svc).Search(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestOrganizationHandler_Update(t *testing.T) {
	t.Run("passes the raw patch", func(t *testing.T) {
		svc := &fakeOrganizationService{
			orgType: organization.TypeCompany,
			UpdateFn: func(ctx context.Context, id int64, patch map[string]any) (organization.OrganizationResponse, error) {
				assert.Equal(t, "Acme General", patch["legalName"])
				return organization.OrganizationResponse{ID: id, LegalName: "Acme General"}, nil
			},
		}
		c, w := newContext(http.MethodPut, "/insurance/companies/1", `{"legalName":"Acme General"}`, gin.Param{Key: "id", Value: "1"})

		organization.NewHandler(svc).Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := &fakeOrganizationService{orgType: organization.TypeCompany}
		c, w := newContext(http.MethodPut, "/insurance/companies/1", `{"legalName":`, gin.Param{Key: "id", Value: "1"})

		organization.NewHandler(svc).Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOrganizationHandler_Delete(t *testing.T) {
	svc := &fakeOrganizationService{
		orgType:  organization.TypeCompany,
		DeleteFn: func(ctx context.Context, id int64) error { return nil },
	}
	c, w := newContext(http.MethodDelete, "/insurance/companies/1", "", gin.Param{Key: "id", Value: "1"})

	organization.NewHandler(svc).Delete(c)

	assert.Equal(t, http.StatusNoContent, c.Writer.Status())
	assert.Empty(t, w.Body.String())
}
