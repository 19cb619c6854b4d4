package user_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mmnete/bimasoft-backend/internal/identity"
	identityMock "github.com/mmnete/bimasoft-backend/internal/identity/mock"
	"github.com/mmnete/bimasoft-backend/internal/user"
	usererrors "github.com/mmnete/bimasoft-backend/internal/user/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeUserService struct {
	user.Service
	CreateFn        func(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error)
	LoginFn         func(ctx context.Context, req user.LoginRequest) (user.LoginResponse, error)
	LogoutFn        func(ctx context.Context, uid string) error
	CheckLoggedInFn func(ctx context.Context, subject string) (user.UserResponse, error)
	DeleteFn        func(ctx context.Context, id int64) error
}

func (f *fakeUserService) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeUserService) Login(ctx context.Context, req user.LoginRequest) (user.LoginResponse, error) {
	return f.LoginFn(ctx, req)
}
func (f *fakeUserService) Logout(ctx context.Context, uid string) error {
	return f.LogoutFn(ctx, uid)
}
func (f *fakeUserService) CheckLoggedIn(ctx context.Context, subject string) (user.UserResponse, error) {
	return f.CheckLoggedInFn(ctx, subject)
}
func (f *fakeUserService) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
}

func serve(h gin.HandlerFunc, method, target, body string, params ...gin.Param) (*httptest.ResponseRecorder, envelope) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	h(c)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestUserHandler_Create(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		h := user.NewHandler(&fakeUserService{})
		w, env := serve(h.Create, http.MethodPost, "/users",
			`{"identityUid":"s","email":"nope","role":"admin","insuranceEntityId":1,"entityType":"company"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid email format", env.Message)
	})

	t.Run("missing required field", func(t *testing.T) {
		h := user.NewHandler(&fakeUserService{})
		w, env := serve(h.Create, http.MethodPost, "/users", `{"email":"jane@acme.co.tz"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, env.Success)
	})

	t.Run("created", func(t *testing.T) {
		h := user.NewHandler(&fakeUserService{
			CreateFn: func(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
				return user.UserResponse{ID: 3, Email: req.Email}, nil
			},
		})
		w, env := serve(h.Create, http.MethodPost, "/users",
			`{"identityUid":"s","email":"jane@acme.co.tz","role":"admin","insuranceEntityId":1,"entityType":"company"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, env.Success)
	})
}

func TestUserHandler_Login(t *testing.T) {
	t.Run("bad credentials", func(t *testing.T) {
		h := user.NewHandler(&fakeUserService{
			LoginFn: func(ctx context.Context, req user.LoginRequest) (user.LoginResponse, error) {
				return user.LoginResponse{}, usererrors.ErrInvalidCredentials
			},
		})
		w, env := serve(h.Login, http.MethodPost, "/login", `{"email":"a@b.co","password":"x"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid credentials", env.Message)
	})

	t.Run("success", func(t *testing.T) {
		h := user.NewHandler(&fakeUserService{
			LoginFn: func(ctx context.Context, req user.LoginRequest) (user.LoginResponse, error) {
				return user.LoginResponse{Token: "tok", User: user.UserResponse{ID: 1}}, nil
			},
		})
		w, env := serve(h.Login, http.MethodPost, "/login", `{"email":"a@b.co","password":"x"}`)

		require.Equal(t, http.StatusOK, w.Code)
		var data user.LoginResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "tok", data.Token)
	})
}

func TestUserHandler_Logout(t *testing.T) {
	h := user.NewHandler(&fakeUserService{
		LogoutFn: func(ctx context.Context, uid string) error {
			assert.Equal(t, "subj-1", uid)
			return nil
		},
	})
	w, env := serve(h.Logout, http.MethodPost, "/logout", `{"uid":"subj-1"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User logged out successfully", env.Message)
}

func TestUserHandler_CheckLoggedIn(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	provider := identityMock.NewMockProvider(ctrl)

	h := user.NewHandler(&fakeUserService{
		CheckLoggedInFn: func(ctx context.Context, subject string) (user.UserResponse, error) {
			assert.Equal(t, "subj-1", subject)
			return user.UserResponse{ID: 1, IdentityUID: subject}, nil
		},
	})
	r := gin.New()
	user.RegisterRoutes(r.Group("/api/v1"), h, provider)

	get := func(token string) (*httptest.ResponseRecorder, envelope) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/check-logged-in", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		r.ServeHTTP(w, req)
		var env envelope
		_ = json.Unmarshal(w.Body.Bytes(), &env)
		return w, env
	}

	t.Run("missing token", func(t *testing.T) {
		w, env := get("")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Authorization token is required", env.Message)
		assert.Equal(t, "UNAUTHORIZED", env.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		provider.EXPECT().VerifyToken(gomock.Any(), "bad").Return("", identity.ErrInvalidToken)

		w, env := get("bad")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid or expired token", env.Message)
	})

	t.Run("logged in", func(t *testing.T) {
		provider.EXPECT().VerifyToken(gomock.Any(), "tok").Return("subj-1", nil)

		w, env := get("tok")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "User is logged in", env.Message)
		var data user.UserResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "subj-1", data.IdentityUID)
	})
}

func TestUserHandler_Delete(t *testing.T) {
	h := user.NewHandler(&fakeUserService{
		DeleteFn: func(ctx context.Context, id int64) error { return nil },
	})

	t.Run("invalid id", func(t *testing.T) {
		w, _ := serve(h.Delete, http.MethodDelete, "/users/x", "", gin.Param{Key: "id", Value: "x"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("no content", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/users/1", nil)
		c.Params = gin.Params{{Key: "id", Value: "1"}}

		h.Delete(c)

		assert.Equal(t, http.StatusNoContent, c.Writer.Status())
	})
}
