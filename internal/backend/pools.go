package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// CreatePool creates a pool through the admin API.
func (c *Client) CreatePool(ctx context.Context, token string, req CreatePoolRequest) (CreatePoolResult, error) {
	body, err := c.do(ctx, http.MethodPost, "/admin/pools", token, req)
	if err != nil {
		return CreatePoolResult{}, err
	}

	var resp CreatePoolResult
	if err := json.Unmarshal(body, &resp); err != nil {
		return CreatePoolResult{}, fmt.Errorf("backend: decode create pool response: %w", err)
	}

	return resp, nil
}

// GetAdminPools lists all pools visible to the admin. The backend has been
// seen returning either a bare array or an object wrapping one, so both are
// accepted.
func (c *Client) GetAdminPools(ctx context.Context, token string) ([]AdminPool, error) {
	body, err := c.do(ctx, http.MethodGet, "/admin/get-pools", token, nil)
	if err != nil {
		return nil, err
	}

	var pools []AdminPool
	if err := json.Unmarshal(body, &pools); err == nil {
		return pools, nil
	}

	var wrapped struct {
		Pools []AdminPool `json:"pools"`
		Data  []AdminPool `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("backend: decode pools response: %w", err)
	}
	if wrapped.Pools != nil {
		return wrapped.Pools, nil
	}
	return wrapped.Data, nil
}
