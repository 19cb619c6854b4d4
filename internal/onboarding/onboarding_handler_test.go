package onboarding_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mmnete/bimasoft-backend/internal/onboarding"
	onboardingerrors "github.com/mmnete/bimasoft-backend/internal/onboarding/errors"
	onboardingMock "github.com/mmnete/bimasoft-backend/internal/onboarding/mock"
	"github.com/mmnete/bimasoft-backend/internal/organization"
	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
}

func newRouter(t *testing.T) (*gin.Engine, *onboardingMock.MockOnboarder, *onboardingMock.MockApprover) {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	ctrl := gomock.NewController(t)
	onboarder := onboardingMock.NewMockOnboarder(ctrl)
	approver := onboardingMock.NewMockApprover(ctrl)
	h := onboarding.NewHandler(onboarder, approver)

	r := gin.New()
	r.POST("/insurance/companies", h.Create(organization.TypeCompany))
	r.POST("/insurance/companies/:id/approve", h.Approve(organization.TypeCompany))
	r.POST("/insurance/organizations/approve", h.ApproveByBody)
	return r, onboarder, approver
}

func do(r *gin.Engine, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0 Safari/537.36")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

const validCompany = `{
	"legalName": "Acme <b>Insurance</b>",
	"brelaNumber": "BR-100",
	"tinNumber": "TIN-100",
	"contactEmail": "info@acme.co.tz",
	"contactPhone": "+255700000100",
	"physicalAddress": {"city": "Dar es Salaam", "country": "Tanzania"},
	"insuranceTypes": ["motor", "fire"],
	"paymentMethods": [{"method": "bank", "details": {"bank": "CRDB"}}],
	"adminFullName": "Jane Admin",
	"adminEmail": "jane@acme.co.tz",
	"geolocation": "Dar es Salaam"
}`

func TestOnboardingHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, onboarder, _ := newRouter(t)
		onboarder.EXPECT().Onboard(gomock.Any(), organization.TypeCompany, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req onboarding.Request) (onboarding.Result, error) {
				assert.Equal(t, "Acme Insurance", req.LegalName)
				assert.Equal(t, []string{"motor", "fire"}, req.InsuranceTypes)
				assert.Equal(t, "Dar es Salaam", req.Client.Geolocation)
				assert.NotEmpty(t, req.Client.IP)
				return onboarding.Result{
					OrganizationResponse: organization.OrganizationResponse{ID: 42, AccountStatus: organization.StatusPendingApproval},
					AdminUserID:          7,
				}, nil
			})

		w, env := do(r, http.MethodPost, "/insurance/companies", validCompany)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, env.Success)
		var data map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, float64(42), data["id"])
		assert.Equal(t, "pending_approval", data["accountStatus"])
	})

	t.Run("insurance types must be an array", func(t *testing.T) {
		r, _, _ := newRouter(t)
		body := strings.Replace(validCompany, `["motor", "fire"]`, `"motor"`, 1)

		w, env := do(r, http.MethodPost, "/insurance/companies", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "insuranceTypes must be an array of strings.", env.Message)
	})

	t.Run("payment methods must be an array", func(t *testing.T) {
		r, _, _ := newRouter(t)
		body := strings.Replace(validCompany, `[{"method": "bank", "details": {"bank": "CRDB"}}]`, `{"method": "bank"}`, 1)

		w, env := do(r, http.MethodPost, "/insurance/companies", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "paymentMethods must be an array of payment details objects.", env.Message)
	})

	t.Run("invalid email", func(t *testing.T) {
		r, _, _ := newRouter(t)
		body := strings.Replace(validCompany, "info@acme.co.tz", "not-an-email", 1)

		w, _ := do(r, http.MethodPost, "/insurance/companies", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid phone", func(t *testing.T) {
		r, _, _ := newRouter(t)
		body := strings.Replace(validCompany, "+255700000100", "call me", 1)

		w, env := do(r, http.MethodPost, "/insurance/companies", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Contact Phone must be a valid phone number", env.Message)
	})

	t.Run("service error is mapped", func(t *testing.T) {
		r, onboarder, _ := newRouter(t)
		onboarder.EXPECT().Onboard(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(onboarding.Result{}, onboardingerrors.ErrAccountCreationFailed)

		w, env := do(r, http.MethodPost, "/insurance/companies", validCompany)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Failed to create account", env.Message)
	})
}

func TestOnboardingHandler_Approve(t *testing.T) {
	t.Run("path id", func(t *testing.T) {
		r, _, approver := newRouter(t)
		approver.EXPECT().Approve(gomock.Any(), organization.TypeCompany, int64(5), "s3cret").
			Return(organization.OrganizationResponse{ID: 5, AccountStatus: organization.StatusApproved}, nil)

		w, env := do(r, http.MethodPost, "/insurance/companies/5/approve", `{"devPassword":"s3cret"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Organization with ID 5 has been approved.", env.Message)
	})

	t.Run("bad path id", func(t *testing.T) {
		r, _, _ := newRouter(t)

		w, _ := do(r, http.MethodPost, "/insurance/companies/abc/approve", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("body id", func(t *testing.T) {
		r, _, approver := newRouter(t)
		approver.EXPECT().Approve(gomock.Any(), "", int64(9), "s3cret").
			Return(organization.OrganizationResponse{ID: 9}, nil)

		w, env := do(r, http.MethodPost, "/insurance/organizations/approve", `{"organizationId":9,"devPassword":"s3cret"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Organization with ID 9 has been approved.", env.Message)
	})

	t.Run("wrong secret", func(t *testing.T) {
		r, _, approver := newRouter(t)
		approver.EXPECT().Approve(gomock.Any(), "", int64(9), "nope").
			Return(organization.OrganizationResponse{}, onboardingerrors.ErrIncorrectDevPassword)

		w, env := do(r, http.MethodPost, "/insurance/organizations/approve", `{"organizationId":9,"devPassword":"nope"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Incorrect dev password!", env.Message)
	})

	t.Run("missing organization id", func(t *testing.T) {
		r, _, _ := newRouter(t)

		w, _ := do(r, http.MethodPost, "/insurance/organizations/approve", `{"devPassword":"s3cret"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
