package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// Login authenticates a user and returns the session token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body, err := c.do(ctx, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", err
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("backend: decode login response: %w", err)
	}
	if resp.Token == "" {
		return "", errors.New("login succeeded but no token was returned")
	}

	return resp.Token, nil
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, fullname, username, email, password string) (SignupResult, error) {
	body, err := c.do(ctx, http.MethodPost, "/auth/signup", "", map[string]string{
		"fullname": fullname,
		"username": username,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return SignupResult{}, err
	}

	var resp SignupResult
	if err := json.Unmarshal(body, &resp); err != nil {
		return SignupResult{}, fmt.Errorf("backend: decode signup response: %w", err)
	}

	return resp, nil
}

// CheckUsername reports whether a username is still available. Backend errors
// soft-fail to "available" so a flaky availability check never blocks signup.
func (c *Client) CheckUsername(ctx context.Context, username string) bool {
	return c.checkAvailability(ctx, "/auth/check-username", "username", username)
}

// CheckEmail reports whether an email is still available, with the same
// soft-fail behavior as CheckUsername.
func (c *Client) CheckEmail(ctx context.Context, email string) bool {
	return c.checkAvailability(ctx, "/auth/check-email", "email", email)
}

func (c *Client) checkAvailability(ctx context.Context, path, param, value string) bool {
	params := url.Values{}
	params.Set(param, value)

	body, err := c.do(ctx, http.MethodGet, queryPath(path, params), "", nil)
	if err != nil {
		return true
	}

	var resp struct {
		Available *bool `json:"available"`
	}
	if err := json.Unmarshal(body, &resp); err != nil || resp.Available == nil {
		return true
	}

	return *resp.Available
}

// DeleteAccount removes the authenticated user's account.
func (c *Client) DeleteAccount(ctx context.Context, token string) error {
	_, err := c.do(ctx, http.MethodDelete, "/auth/delete-account", token, nil)
	return err
}

// AdminLogin authenticates an admin and returns the token plus identity.
func (c *Client) AdminLogin(ctx context.Context, email, password string) (AdminLoginResult, error) {
	body, err := c.do(ctx, http.MethodPost, "/admin/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return AdminLoginResult{}, err
	}

	var resp AdminLoginResult
	if err := json.Unmarshal(body, &resp); err != nil {
		return AdminLoginResult{}, fmt.Errorf("backend: decode admin login response: %w", err)
	}
	if resp.Token == "" {
		return AdminLoginResult{}, errors.New("admin login succeeded but no token was returned")
	}

	return resp, nil
}
