// Package auth manages the client side of authentication: bearer tokens
// issued by the Knowrist backend, the admin session, and the middleware
// guarding the local API surface. Tokens are opaque credentials here — the
// backend signs and verifies them; the client only stores and forwards them.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Local admin roles mapped from the backend's role names.
const (
	RoleMain  = "main"
	RoleSuper = "super"
)

var (
	ErrUnknownRole = errors.New("unknown admin role")
	ErrNoSession   = errors.New("no active session")
)

// MapAdminRole translates the backend's role names into the client's.
func MapAdminRole(backendRole string) (string, error) {
	switch backendRole {
	case "ADMIN":
		return RoleMain, nil
	case "SUPER_ADMIN":
		return RoleSuper, nil
	default:
		return "", ErrUnknownRole
	}
}

// TokenClaims is what the client can read out of a backend-issued token for
// display purposes. jwt.RegisteredClaims carries subject and expiry.
type TokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// DecodeClaims extracts claims from a token without verifying its signature.
// Only the backend holds the signing key, so the result is display data, not
// an authorization decision.
func DecodeClaims(token string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}
