package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/cache"
	"jobboard-api/internal/mocks"
	"jobboard-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func generateTestToken(t *testing.T, subject string, secret string, expiresIn time.Duration) string {
	t.Helper()
	claims := &jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newAuthTestRouter() (*gin.Engine, *uuid.UUID) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	var seenUserID uuid.UUID
	router.GET("/protected", middleware.JWTAuthMiddleware(testSecret), func(c *gin.Context) {
		id, err := middleware.GetUserIDFromContext(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		seenUserID = id
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router, &seenUserID
}

func TestJWTAuthMiddleware(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{
			name:           "Valid Token",
			authHeader:     "Bearer " + generateTestToken(t, userID.String(), testSecret, time.Hour),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing Header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Malformed Header",
			authHeader:     "Token abc123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Expired Token",
			authHeader:     "Bearer " + generateTestToken(t, userID.String(), testSecret, -time.Minute),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Wrong Signature",
			authHeader:     "Bearer " + generateTestToken(t, userID.String(), "other-secret", time.Hour),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Garbage Subject",
			authHeader:     "Bearer " + generateTestToken(t, "not-a-uuid", testSecret, time.Hour),
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, seenUserID := newAuthTestRouter()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, userID, *seenUserID)
			}
		})
	}
}

func newRoleTestRouter(role models.Role, roles *mocks.RoleStore, profiles *mocks.ProfileRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/gated",
		middleware.JWTAuthMiddleware(testSecret),
		middleware.RequireRole(role, roles, profiles),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) },
	)
	return router
}

func TestRequireRole(t *testing.T) {
	userID := uuid.New()
	token := "Bearer " + generateTestToken(t, userID.String(), testSecret, time.Hour)

	t.Run("Warm Cache Skips Profile Lookup", func(t *testing.T) {
		roles := mocks.NewRoleStore()
		profiles := new(mocks.ProfileRepository)
		require.NoError(t, roles.Set(t.Context(), userID, &cache.Entry{Role: models.RoleEmployer}))

		router := newRoleTestRouter(models.RoleEmployer, roles, profiles)
		req := httptest.NewRequest(http.MethodGet, "/gated", nil)
		req.Header.Set("Authorization", token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		profiles.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Cold Cache Falls Back To Profile And Refills", func(t *testing.T) {
		roles := mocks.NewRoleStore()
		profiles := new(mocks.ProfileRepository)
		profiles.On("GetByID", mock.Anything, userID).
			Return(&models.Profile{ID: userID, Role: models.RoleEmployer}, nil).Once()

		router := newRoleTestRouter(models.RoleEmployer, roles, profiles)
		req := httptest.NewRequest(http.MethodGet, "/gated", nil)
		req.Header.Set("Authorization", token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, roles.Has(userID))
		profiles.AssertExpectations(t)
	})

	t.Run("Role Mismatch Is Forbidden", func(t *testing.T) {
		roles := mocks.NewRoleStore()
		profiles := new(mocks.ProfileRepository)
		require.NoError(t, roles.Set(t.Context(), userID, &cache.Entry{Role: models.RoleJobSeeker}))

		router := newRoleTestRouter(models.RoleEmployer, roles, profiles)
		req := httptest.NewRequest(http.MethodGet, "/gated", nil)
		req.Header.Set("Authorization", token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Unknown Profile Is Unauthorized", func(t *testing.T) {
		roles := mocks.NewRoleStore()
		profiles := new(mocks.ProfileRepository)
		profiles.On("GetByID", mock.Anything, userID).
			Return(nil, assert.AnError).Once()

		router := newRoleTestRouter(models.RoleEmployer, roles, profiles)
		req := httptest.NewRequest(http.MethodGet, "/gated", nil)
		req.Header.Set("Authorization", token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
