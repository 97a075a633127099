package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Afresh-Revolution/Knowrist/internal/backend"
	"github.com/Afresh-Revolution/Knowrist/internal/localstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *localstore.Store {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	return store
}

func adminBackend(t *testing.T, role string) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(backend.AdminLoginResult{
			Token: "admin-token",
			Admin: backend.Admin{ID: "a1", Email: "admin@example.com", Role: role},
		})
	}))
	t.Cleanup(srv.Close)
	return backend.NewClient(srv.URL)
}

func TestAdminService_Login(t *testing.T) {
	store := newTestStore(t)
	service := NewAdminService(adminBackend(t, "SUPER_ADMIN"), store)

	session, err := service.Login(context.Background(), "admin@example.com", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "admin-token", session.Token)
	assert.Equal(t, RoleSuper, session.Role)

	token, role, ok := service.Session()
	assert.True(t, ok)
	assert.Equal(t, "admin-token", token)
	assert.Equal(t, RoleSuper, role)

	persisted, _ := store.Get(localstore.KeyAdminToken)
	assert.Equal(t, "admin-token", persisted)
	persistedRole, _ := store.Get(localstore.KeyAdminRole)
	assert.Equal(t, RoleSuper, persistedRole)
}

func TestAdminService_Login_UnknownRole(t *testing.T) {
	store := newTestStore(t)
	service := NewAdminService(adminBackend(t, "USER"), store)

	_, err := service.Login(context.Background(), "admin@example.com", "secret123")

	assert.ErrorIs(t, err, ErrUnknownRole)
	_, _, ok := service.Session()
	assert.False(t, ok)
}

func TestAdminService_Restore(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set(localstore.KeyAdminToken, "admin-token"))
	require.NoError(t, store.Set(localstore.KeyAdminRole, RoleMain))

	service := NewAdminService(nil, store)
	service.Restore()

	token, role, ok := service.Session()
	assert.True(t, ok)
	assert.Equal(t, "admin-token", token)
	assert.Equal(t, RoleMain, role)
}

func TestAdminService_Restore_NoSession(t *testing.T) {
	service := NewAdminService(nil, newTestStore(t))
	service.Restore()

	_, _, ok := service.Session()
	assert.False(t, ok)
}

func TestAdminService_Logout(t *testing.T) {
	store := newTestStore(t)
	service := NewAdminService(adminBackend(t, "ADMIN"), store)

	_, err := service.Login(context.Background(), "admin@example.com", "secret123")
	require.NoError(t, err)

	service.Logout()

	_, _, ok := service.Session()
	assert.False(t, ok)
	_, found := store.Get(localstore.KeyAdminToken)
	assert.False(t, found)
	_, found = store.Get(localstore.KeyAdminRole)
	assert.False(t, found)
}
