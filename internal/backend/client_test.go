package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "user@example.com", req["email"])
		assert.Equal(t, "secret123", req["password"])

		json.NewEncoder(w).Encode(map[string]string{"token": "jwt-token"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	token, err := client.Login(context.Background(), "user@example.com", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
}

func TestClient_Login_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Login(context.Background(), "user@example.com", "secret123")

	assert.EqualError(t, err, "login succeeded but no token was returned")
}

func TestClient_Login_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "invalid credentials"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Login(context.Background(), "user@example.com", "wrong")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.Code)
	assert.Equal(t, "invalid credentials", statusErr.Message)
}

func TestClient_StatusError_FallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Login(context.Background(), "user@example.com", "secret123")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, "HTTP 500: Internal Server Error", statusErr.Message)
}

func TestClient_Unreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")

	_, err := client.Login(context.Background(), "user@example.com", "secret123")

	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestClient_CheckUsername(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    bool
	}{
		{
			name: "available",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "newuser", r.URL.Query().Get("username"))
				json.NewEncoder(w).Encode(map[string]bool{"available": true})
			},
			want: true,
		},
		{
			name: "taken",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]bool{"available": false})
			},
			want: false,
		},
		{
			name: "backend error soft-fails to available",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			want: true,
		},
		{
			name: "missing field soft-fails to available",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewClient(srv.URL)
			assert.Equal(t, tt.want, client.CheckUsername(context.Background(), "newuser"))
		})
	}
}

func TestClient_GetBalance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wallets", r.URL.Path)
		assert.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]float64{"balance": 1250.75})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	balance, err := client.GetBalance(context.Background(), "jwt-token")

	require.NoError(t, err)
	assert.Equal(t, 1250.75, balance)
}

func TestClient_GetBalance_NoBalanceField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"currency": "NGN"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.GetBalance(context.Background(), "jwt-token")

	assert.ErrorIs(t, err, ErrNoBalance)
}

func TestClient_VerifyActivationCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/game/verify-activation-code", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "GAME-A1B2C", req["activationCode"], "code must be normalized before sending")
		assert.Equal(t, "neon-matrix", req["poolId"])

		json.NewEncoder(w).Encode(VerifyResult{Valid: true})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	result, err := client.VerifyActivationCode(context.Background(), "  game-a1b2c ", "neon-matrix")

	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestClient_GetAdminPools(t *testing.T) {
	pools := []AdminPool{
		{ID: "p1", Title: "Word Storm", Status: "OPEN"},
		{ID: "p2", Title: "Logic Rush", Status: "LIVE"},
	}

	tests := []struct {
		name string
		body interface{}
	}{
		{"bare array", pools},
		{"pools wrapper", map[string]interface{}{"pools": pools}},
		{"data wrapper", map[string]interface{}{"data": pools}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/admin/get-pools", r.URL.Path)
				assert.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))
				json.NewEncoder(w).Encode(tt.body)
			}))
			defer srv.Close()

			client := NewClient(srv.URL)
			got, err := client.GetAdminPools(context.Background(), "admin-token")

			require.NoError(t, err)
			assert.Equal(t, pools, got)
		})
	}
}

func TestClient_AdminLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/login", r.URL.Path)
		json.NewEncoder(w).Encode(AdminLoginResult{
			Token: "admin-token",
			Admin: Admin{ID: "a1", Email: "admin@example.com", Role: "SUPER_ADMIN"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	result, err := client.AdminLogin(context.Background(), "admin@example.com", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "admin-token", result.Token)
	assert.Equal(t, "SUPER_ADMIN", result.Admin.Role)
}

func TestStatusError_Error(t *testing.T) {
	err := &StatusError{Code: 404, Message: "pool not found"}
	assert.Equal(t, "pool not found", err.Error())
	assert.True(t, errors.As(error(err), new(*StatusError)))
}
