package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapAdminRole(t *testing.T) {
	tests := []struct {
		backendRole string
		want        string
		wantErr     bool
	}{
		{"ADMIN", RoleMain, false},
		{"SUPER_ADMIN", RoleSuper, false},
		{"USER", "", true},
		{"admin", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.backendRole, func(t *testing.T) {
			role, err := MapAdminRole(tt.backendRole)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownRole)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, role)
		})
	}
}

func TestDecodeClaims(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, TokenClaims{
		Email: "user@example.com",
		Role:  "USER",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte("backend-only-secret"))
	require.NoError(t, err)

	claims, err := DecodeClaims(signed)

	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "USER", claims.Role)
	assert.Equal(t, "u1", claims.Subject)
}

func TestDecodeClaims_Malformed(t *testing.T) {
	_, err := DecodeClaims("not-a-jwt")
	assert.Error(t, err)
}
