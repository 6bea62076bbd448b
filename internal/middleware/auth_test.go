package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   "user-1",
		"email": "alex.johnson@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func authProbe() (http.Handler, *string, *string) {
	var userID, email string
	h := Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID = GetUserID(r.Context())
		email = GetUserEmail(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
	return h, &userID, &email
}

func TestAuthPassesAnonymousRequests(t *testing.T) {
	h, userID, _ := authProbe()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, *userID)
}

func TestAuthAcceptsValidToken(t *testing.T) {
	h, userID, email := authProbe()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", *userID)
	assert.Equal(t, "alex.johnson@example.com", *email)
}

func TestAuthRejectsBadSignature(t *testing.T) {
	h, _, _ := authProbe()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRejectsMalformedHeader(t *testing.T) {
	h, _, _ := authProbe()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "not-a-bearer-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
