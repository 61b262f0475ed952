package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrmpro/hrm-backend-go/internal/fixtures"
)

// Test Navigation - Role Filtered
func TestViewHandler_Navigation_RoleFiltered(t *testing.T) {
	mux := newTestRouter(t)

	adminToken := loginAs(t, mux, fixtures.AdminUsername, fixtures.AdminPassword)
	w := doJSON(t, mux, http.MethodGet, "/api/v1/navigation", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	groups := decodeBody(t, w)["data"].([]interface{})
	assert.Len(t, groups, 2)

	superToken := loginAs(t, mux, fixtures.SuperAdminUsername, fixtures.SuperAdminPassword)
	w = doJSON(t, mux, http.MethodGet, "/api/v1/navigation", superToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	groups = decodeBody(t, w)["data"].([]interface{})
	assert.Len(t, groups, 3)
}

// Test SetView - Renders After Delay
func TestViewHandler_SetView_RendersAfterDelay(t *testing.T) {
	mux := newTestRouter(t)
	token := loginAs(t, mux, fixtures.SuperAdminUsername, fixtures.SuperAdminPassword)

	w := doJSON(t, mux, http.MethodPost, "/api/v1/views/employees", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	deadline := time.Now().Add(2 * time.Second)
	for {
		w = doJSON(t, mux, http.MethodGet, "/api/v1/views/current", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		data := decodeBody(t, w)["data"].(map[string]interface{})
		if data["view_id"] == "employees" && data["state"] == "ready" {
			assert.Equal(t, "Employee Directory", data["title"])
			assert.NotNil(t, data["fragment"])
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("employees view never reached the ready state")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

// Test SetView - Invalid View ID
func TestViewHandler_SetView_InvalidViewID(t *testing.T) {
	mux := newTestRouter(t)
	token := loginAs(t, mux, fixtures.SuperAdminUsername, fixtures.SuperAdminPassword)

	w := doJSON(t, mux, http.MethodPost, "/api/v1/views/..%2Fetc", token, nil)
	assert.NotEqual(t, http.StatusOK, w.Code)
}
