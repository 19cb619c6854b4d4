package customer_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mmnete/bimasoft-backend/internal/customer"
	customererrors "github.com/mmnete/bimasoft-backend/internal/customer/errors"
	customerMock "github.com/mmnete/bimasoft-backend/internal/customer/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type handlerDeps struct {
	router      *gin.Engine
	customers   *customerMock.MockService
	individuals *customerMock.MockIndividualService
	corporates  *customerMock.MockCorporateService
}

func setupHandlerTest(t *testing.T) *handlerDeps {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	deps := &handlerDeps{
		router:      gin.New(),
		customers:   customerMock.NewMockService(ctrl),
		individuals: customerMock.NewMockIndividualService(ctrl),
		corporates:  customerMock.NewMockCorporateService(ctrl),
	}
	h := customer.NewHandler(deps.customers, deps.individuals, deps.corporates)
	customer.RegisterRoutes(deps.router.Group("/api/v1"), h)
	return deps
}

func (d *handlerDeps) do(method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, req)
	env := map[string]any{}
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestCustomerHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		deps := setupHandlerTest(t)
		deps.customers.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(customer.CustomerResponse{ID: 11, CustomerType: customer.TypeIndividual, LegalName: "Juma Hassan"}, nil)

		w, env := deps.do(http.MethodPost, "/api/v1/customers",
			`{"customerType":"individual","legalName":"Juma Hassan","tinNumber":"TIN-9","nationalId":"NID-1"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		data := env["data"].(map[string]any)
		assert.Equal(t, float64(11), data["id"])
	})

	t.Run("unknown customer type fails binding", func(t *testing.T) {
		deps := setupHandlerTest(t)

		w, _ := deps.do(http.MethodPost, "/api/v1/customers", `{"customerType":"alien","legalName":"X","tinNumber":"T"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate", func(t *testing.T) {
		deps := setupHandlerTest(t)
		deps.customers.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(customer.CustomerResponse{}, customererrors.ErrCustomerAlreadyExists)

		w, env := deps.do(http.MethodPost, "/api/v1/customers",
			`{"customerType":"individual","legalName":"Juma Hassan","tinNumber":"TIN-9","nationalId":"NID-1"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "DUPLICATE", env["code"])
	})
}

func TestCustomerHandler_Organization(t *testing.T) {
	t.Run("create and link", func(t *testing.T) {
		deps := setupHandlerTest(t)
		deps.customers.EXPECT().CreateForOrganization(gomock.Any(), int64(42), gomock.Any()).
			Return(customer.CustomerResponse{ID: 11}, nil)

		w, _ := deps.do(http.MethodPost, "/api/v1/organizations/42/customers",
			`{"customerType":"corporate","legalName":"Kilimo Ltd","tinNumber":"TIN-7"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("unlink", func(t *testing.T) {
		deps := setupHandlerTest(t)
		deps.customers.EXPECT().Unlink(gomock.Any(), int64(42), int64(11)).Return(nil)

		w, _ := deps.do(http.MethodDelete, "/api/v1/organizations/42/customers/11", "")

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("bad organization id", func(t *testing.T) {
		deps := setupHandlerTest(t)

		w, env := deps.do(http.MethodGet, "/api/v1/organizations/zero/customers", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid organization ID", env["message"])
	})
}

func TestCustomerHandler_Details(t *testing.T) {
	t.Run("individual not found", func(t *testing.T) {
		deps := setupHandlerTest(t)
		deps.individuals.EXPECT().GetByNationalID(gomock.Any(), "NID-1").
			Return(customer.IndividualResponse{}, customererrors.ErrIndividualNotFound)

		w, env := deps.do(http.MethodGet, "/api/v1/individual-customers/national-id/NID-1", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Individual customer not found", env["message"])
	})

	t.Run("corporate missing required fields", func(t *testing.T) {
		deps := setupHandlerTest(t)

		w, _ := deps.do(http.MethodPost, "/api/v1/corporate-customers", `{"customerId":8}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("corporate by brela", func(t *testing.T) {
		deps := setupHandlerTest(t)
		brela := "BR-77"
		deps.corporates.EXPECT().GetByBrela(gomock.Any(), "BR-77").
			Return(customer.CorporateResponse{ID: 2, BrelaRegistrationNumber: &brela}, nil)

		w, env := deps.do(http.MethodGet, "/api/v1/corporate-customers/brela/BR-77", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "BR-77", env["data"].(map[string]any)["brelaRegistrationNumber"])
	})
}
