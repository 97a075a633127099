package pool

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Afresh-Revolution/Knowrist/internal/auth"
	"github.com/Afresh-Revolution/Knowrist/internal/backend"
	"github.com/Afresh-Revolution/Knowrist/internal/localstore"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAdminRouter wires CreateAdminPool behind a restored admin session, the
// same way the server mounts it.
func newAdminRouter(t *testing.T, backendURL string) (*gin.Engine, *Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := localstore.Open(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	require.NoError(t, store.Set(localstore.KeyAdminToken, "admin-token"))
	require.NoError(t, store.Set(localstore.KeyAdminRole, "main"))

	adminSvc := auth.NewAdminService(nil, store)
	adminSvc.Restore()

	pools := NewStore()
	handler := NewHandler(pools, NewAdminService(backend.NewClient(backendURL), pools))

	r := gin.New()
	r.POST("/admin/pools", auth.RequireAdmin(adminSvc, ""), handler.CreateAdminPool)
	return r, pools
}

func TestHandler_CreateAdminPool_RejectsInvalidPayload(t *testing.T) {
	r, pools := newAdminRouter(t, "http://127.0.0.1:1")

	body, _ := json.Marshal(backend.CreatePoolRequest{
		Difficulty: "EXTREME",
		MaxPlayers: 0,
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/pools", bytes.NewReader(body))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
	assert.Contains(t, w.Body.String(), "Title is required")
	assert.Contains(t, w.Body.String(), "Difficulty must be one of: EASY MEDIUM HARD")
	assert.Contains(t, w.Body.String(), "MaxPlayers must be greater than 0")
	assert.Empty(t, pools.List(), "rejected pools must not be mirrored")
}

func TestHandler_CreateAdminPool_ValidPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(backend.CreatePoolResult{ID: "srv-9", Message: "created"})
	}))
	defer srv.Close()

	r, pools := newAdminRouter(t, srv.URL)

	body, _ := json.Marshal(backend.CreatePoolRequest{
		Title:      "Word Storm",
		Difficulty: "MEDIUM",
		Category:   "ENGLISH",
		EntryFee:   100,
		MaxPlayers: 500,
		Status:     "OPEN",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/pools", bytes.NewReader(body))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	local, ok := pools.Get("srv-9")
	require.True(t, ok)
	assert.Equal(t, "Word Storm", local.Title)
}
