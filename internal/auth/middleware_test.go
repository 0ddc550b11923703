package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authedHandler(t *testing.T, gotAccount *string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*gotAccount = AccountFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateValidToken(t *testing.T) {
	m := newTestJWTManager()
	token, err := m.GenerateToken("0.0.1001", "testnet")
	require.NoError(t, err)

	var account string
	handler := Authenticate(m)(authedHandler(t, &account))

	req := httptest.NewRequest(http.MethodGet, "/quests", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0.0.1001", account)
}

func TestAuthenticateMissingHeader(t *testing.T) {
	m := newTestJWTManager()
	var account string
	handler := Authenticate(m)(authedHandler(t, &account))

	req := httptest.NewRequest(http.MethodGet, "/quests", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, account)
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	m := newTestJWTManager()
	var account string
	handler := Authenticate(m)(authedHandler(t, &account))

	req := httptest.NewRequest(http.MethodGet, "/quests", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateBadToken(t *testing.T) {
	m := newTestJWTManager()
	var account string
	handler := Authenticate(m)(authedHandler(t, &account))

	req := httptest.NewRequest(http.MethodGet, "/quests", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
