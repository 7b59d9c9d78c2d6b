package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adarsht2308/dellcube-lms-sub000/models"
)

func driverUser() *models.AppUser {
	driverID := int64(42)
	return &models.AppUser{
		ID:       10,
		Name:     "Ramesh",
		Email:    "ramesh@example.test",
		Role:     models.RoleDriver,
		DriverID: &driverID,
	}
}

func TestRequireAuthRoundTrip(t *testing.T) {
	token, err := GenerateToken(driverUser())
	require.NoError(t, err)

	var got models.Actor
	handler := RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		got = ActorFrom(r)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/driver/dockets", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(10), got.UserID)
	assert.Equal(t, models.RoleDriver, got.Role)
	assert.Equal(t, int64(42), got.DriverID)
}

func TestRequireAuthMissingHeader(t *testing.T) {
	handler := RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/dockets", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthBadToken(t *testing.T) {
	handler := RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/dockets", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSetJWTSecretInvalidatesOldTokens(t *testing.T) {
	defer SetJWTSecret("supersecret")

	token, err := GenerateToken(driverUser())
	require.NoError(t, err)

	SetJWTSecret("rotated-key")

	handler := RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/dockets", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Tokens issued under the new key pass.
	token, err = GenerateToken(driverUser())
	require.NoError(t, err)

	ok := RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	req = httptest.NewRequest(http.MethodGet, "/dockets", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	ok(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuthRoleRestriction(t *testing.T) {
	token, err := GenerateToken(driverUser())
	require.NoError(t, err)

	handler := RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}, models.RoleOperation, models.RoleBranchAdmin, models.RoleSuperAdmin)

	req := httptest.NewRequest(http.MethodPost, "/dockets", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
