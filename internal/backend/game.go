package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// VerifyActivationCode asks the backend whether an activation code grants
// entry. This is the only place in the client where validity is decided by
// the server rather than locally.
func (c *Client) VerifyActivationCode(ctx context.Context, code, poolID string) (VerifyResult, error) {
	req := map[string]string{
		"activationCode": strings.ToUpper(strings.TrimSpace(code)),
	}
	if poolID != "" {
		req["poolId"] = poolID
	}

	body, err := c.do(ctx, http.MethodPost, "/game/verify-activation-code", "", req)
	if err != nil {
		return VerifyResult{}, err
	}

	var resp VerifyResult
	if err := json.Unmarshal(body, &resp); err != nil {
		return VerifyResult{}, fmt.Errorf("backend: decode verify response: %w", err)
	}

	return resp, nil
}
