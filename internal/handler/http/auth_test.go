package http

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrmpro/hrm-backend-go/internal/domain/auth"
	"github.com/hrmpro/hrm-backend-go/internal/fixtures"
	"github.com/hrmpro/hrm-backend-go/internal/pkg/database"
	"github.com/hrmpro/hrm-backend-go/internal/pkg/jwt"
	"github.com/hrmpro/hrm-backend-go/internal/repository/boltdb"
	authService "github.com/hrmpro/hrm-backend-go/internal/service/auth"
	dashboardService "github.com/hrmpro/hrm-backend-go/internal/service/dashboard"
	payrollService "github.com/hrmpro/hrm-backend-go/internal/service/payroll"
	storeService "github.com/hrmpro/hrm-backend-go/internal/service/store"
	viewService "github.com/hrmpro/hrm-backend-go/internal/service/view"
)

const (
	handlerTestSecret    = "test-secret-key-for-jwt"
	handlerTestAccessExp = "1h"
	handlerTestDelay     = 5 * time.Millisecond
)

// newTestRouter wires the full application against a throwaway bolt file.
func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	db, err := database.NewBoltDB(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	storeSvc := storeService.NewStoreService(context.Background(), boltdb.NewDocumentRepository(db), fixtures.SeedDocument())
	jwtSvc := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp)
	sessionSvc := authService.NewSessionService(storeSvc, jwtSvc)

	sink := viewService.NewLogSink(slog.Default())
	router := viewService.NewRouter(storeSvc, sink, handlerTestDelay)
	viewService.RegisterDefaults(router)

	handlers := Handlers{
		Auth:       NewAuthHandler(sessionSvc, router),
		Employee:   NewEmployeeHandler(storeSvc),
		Attendance: NewAttendanceHandler(storeSvc),
		Client:     NewClientHandler(storeSvc),
		Master:     NewMasterHandler(storeSvc),
		Payroll:    NewPayrollHandler(payrollService.NewPayrollService(storeSvc)),
		Dashboard:  NewDashboardHandler(dashboardService.NewDashboardService(storeSvc)),
		View:       NewViewHandler(sessionSvc, router),
	}
	return NewRouter(jwtSvc, handlers)
}

func doJSON(t *testing.T, mux *chi.Mux, method, target, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func loginAs(t *testing.T, mux *chi.Mux, username, password string) string {
	t.Helper()
	w := doJSON(t, mux, http.MethodPost, "/api/v1/auth/login", "", auth.LoginRequest{
		Username: username,
		Password: password,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	token := data["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

// Test Login - Success
func TestAuthHandler_Login_Success(t *testing.T) {
	mux := newTestRouter(t)

	w := doJSON(t, mux, http.MethodPost, "/api/v1/auth/login", "", auth.LoginRequest{
		Username: fixtures.SuperAdminUsername,
		Password: fixtures.SuperAdminPassword,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBody(t, w)
	assert.True(t, resp["success"].(bool))

	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["access_token"])
	session := data["session"].(map[string]interface{})
	assert.Equal(t, "Super Admin", session["role"])
}

// Test Login - Invalid Credentials
func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mux := newTestRouter(t)

	w := doJSON(t, mux, http.MethodPost, "/api/v1/auth/login", "", auth.LoginRequest{
		Username: fixtures.SuperAdminUsername,
		Password: "wrongpassword",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeBody(t, w)
	assert.False(t, resp["success"].(bool))
}

// Test Login - Invalid JSON
func TestAuthHandler_Login_InvalidJSON(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// Test Session - Requires Token
func TestAuthHandler_Session_RequiresToken(t *testing.T) {
	mux := newTestRouter(t)

	w := doJSON(t, mux, http.MethodGet, "/api/v1/auth/session", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// Test Session - Success
func TestAuthHandler_Session_Success(t *testing.T) {
	mux := newTestRouter(t)
	token := loginAs(t, mux, fixtures.AdminUsername, fixtures.AdminPassword)

	w := doJSON(t, mux, http.MethodGet, "/api/v1/auth/session", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, fixtures.AdminUsername, data["username"])
	assert.Equal(t, "Admin", data["role"])
}

// Test Logout - Clears Session
func TestAuthHandler_Logout_ClearsSession(t *testing.T) {
	mux := newTestRouter(t)
	token := loginAs(t, mux, fixtures.SuperAdminUsername, fixtures.SuperAdminPassword)

	w := doJSON(t, mux, http.MethodPost, "/api/v1/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// The token still verifies, but the session behind it is gone.
	w = doJSON(t, mux, http.MethodGet, "/api/v1/auth/session", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// Test Logout - Requires Token
func TestAuthHandler_Logout_RequiresToken(t *testing.T) {
	mux := newTestRouter(t)
	token := loginAs(t, mux, fixtures.SuperAdminUsername, fixtures.SuperAdminPassword)

	w := doJSON(t, mux, http.MethodPost, "/api/v1/auth/logout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// The live session survives the anonymous attempt.
	w = doJSON(t, mux, http.MethodGet, "/api/v1/auth/session", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, fixtures.SuperAdminUsername, data["username"])
}
