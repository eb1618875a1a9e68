package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carepass-service/internal/app/config"
	"carepass-service/internal/pkg/constvars"
	"carepass-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAuthenticate(t *testing.T) {
	secret := "test-jwt-secret"
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: secret, ExpTimeInHour: 1},
	}
	middlewares := NewMiddlewares(zap.NewNop(), internalConfig)

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
		assert.True(t, ok, "user id should be set in context")
		assert.Equal(t, "user-123", userID)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Missing Authorization Header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/users/user-123", nil)

		rr := httptest.NewRecorder()
		middlewares.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "missing token should be unauthorized")
	})

	t.Run("Empty Bearer Token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/users/user-123", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer ")

		rr := httptest.NewRecorder()
		middlewares.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Malformed Token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/users/user-123", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")

		rr := httptest.NewRecorder()
		middlewares.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code, "unverifiable token should be forbidden")
	})

	t.Run("Token Signed With Different Secret", func(t *testing.T) {
		token, err := utils.GenerateJWT("user-123", "another-secret", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/users/user-123", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Expired Token", func(t *testing.T) {
		token, err := utils.GenerateJWT("user-123", secret, -time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/users/user-123", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Valid Token", func(t *testing.T) {
		token, err := utils.GenerateJWT("user-123", secret, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/users/user-123", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
