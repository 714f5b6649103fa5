package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/models"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceMock is a testify mock of services.AuthService.
type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Register(ctx context.Context, req *dto.RegisterRequest) (*models.Profile, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.Profile), args.String(1), args.Error(2)
}

func (m *authServiceMock) Login(ctx context.Context, req *dto.LoginRequest) (*models.Profile, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.Profile), args.String(1), args.Error(2)
}

func (m *authServiceMock) Logout(ctx context.Context, profileID uuid.UUID) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

func (m *authServiceMock) GetProfile(ctx context.Context, profileID uuid.UUID) (*models.Profile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func newRegisterRouter(svc services.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := handlers.NewAuthHandler(svc, validator.New())
	router.POST("/auth/register", handler.Register)
	router.POST("/auth/login", handler.Login)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(authServiceMock)
		profileID := uuid.New()
		svc.On("Register", mock.Anything, mock.MatchedBy(func(req *dto.RegisterRequest) bool {
			return req.Email == "new@example.com" && req.Role == "employer"
		})).Return(&models.Profile{
			ID:    profileID,
			Email: "new@example.com",
			Role:  models.RoleEmployer,
		}, "signed.jwt.token", nil).Once()

		router := newRegisterRouter(svc)
		w := postJSON(t, router, "/auth/register", gin.H{
			"email":      "new@example.com",
			"password":   "password123",
			"first_name": "Erin",
			"last_name":  "Employer",
			"role":       "employer",
		})

		require.Equal(t, http.StatusCreated, w.Code)
		var resp dto.AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "signed.jwt.token", resp.Token)
		assert.Equal(t, profileID, resp.Profile.ID)
		svc.AssertExpectations(t)
	})

	t.Run("Invalid Role Never Reaches The Service", func(t *testing.T) {
		svc := new(authServiceMock)
		router := newRegisterRouter(svc)

		w := postJSON(t, router, "/auth/register", gin.H{
			"email":    "new@example.com",
			"password": "password123",
			"role":     "admin",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("Missing Email Never Reaches The Service", func(t *testing.T) {
		svc := new(authServiceMock)
		router := newRegisterRouter(svc)

		w := postJSON(t, router, "/auth/register", gin.H{
			"password": "password123",
			"role":     "job-seeker",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		svc := new(authServiceMock)
		router := newRegisterRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})
}

func TestAuthHandler_Login_ErrorMapping(t *testing.T) {
	t.Run("Bad Credentials Map To 401", func(t *testing.T) {
		svc := new(authServiceMock)
		svc.On("Login", mock.Anything, mock.Anything).
			Return(nil, "", services.ErrInvalidCredentials).Once()

		router := newRegisterRouter(svc)
		w := postJSON(t, router, "/auth/login", gin.H{
			"email":    "login@example.com",
			"password": "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Unexpected Error Maps To 500 Without Detail", func(t *testing.T) {
		svc := new(authServiceMock)
		svc.On("Login", mock.Anything, mock.Anything).
			Return(nil, "", assert.AnError).Once()

		router := newRegisterRouter(svc)
		w := postJSON(t, router, "/auth/login", gin.H{
			"email":    "login@example.com",
			"password": "password123",
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	})
}
