package vehicle_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mmnete/bimasoft-backend/internal/lookup/vehicle"
	vehicleMock "github.com/mmnete/bimasoft-backend/internal/lookup/vehicle/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_GetMotorDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, *vehicleMock.MockService) {
		svc := vehicleMock.NewMockService(gomock.NewController(t))
		r := gin.New()
		vehicle.RegisterRoutes(r.Group("/api/v1"), vehicle.NewHandler(svc))
		return r, svc
	}
	get := func(r *gin.Engine, target string) (*httptest.ResponseRecorder, map[string]any) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		env := map[string]any{}
		_ = json.Unmarshal(w.Body.Bytes(), &env)
		return w, env
	}

	t.Run("ok", func(t *testing.T) {
		r, svc := setup(t)
		svc.EXPECT().Lookup(gomock.Any(), "toyota").Return([]vehicle.Details{{Make: "Toyota", Model: "Hilux"}}, nil)

		w, env := get(r, "/api/v1/motor-details?name=toyota")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, env["data"], 1)
	})

	t.Run("missing name", func(t *testing.T) {
		r, svc := setup(t)
		svc.EXPECT().Lookup(gomock.Any(), "").Return(nil, vehicle.ErrNameRequired)

		w, env := get(r, "/api/v1/motor-details")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Name parameter is required", env["message"])
	})
}
