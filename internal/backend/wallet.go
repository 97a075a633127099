package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrNoBalance means the wallet endpoint answered without a balance field.
var ErrNoBalance = errors.New("wallet response carried no balance")

// GetBalance fetches the authoritative wallet balance. token may be empty
// when the backend runs with auth disabled.
func (c *Client) GetBalance(ctx context.Context, token string) (float64, error) {
	body, err := c.do(ctx, http.MethodGet, "/wallets", token, nil)
	if err != nil {
		return 0, err
	}

	var resp struct {
		Balance *float64 `json:"balance"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, fmt.Errorf("backend: decode wallet response: %w", err)
	}
	if resp.Balance == nil {
		return 0, ErrNoBalance
	}

	return *resp.Balance, nil
}
