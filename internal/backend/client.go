// Package backend is the REST client for the external Knowrist backend. The
// backend owns auth, payments, pools and game verification; this client only
// shapes requests and translates failures into messages the UI can show.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Afresh-Revolution/Knowrist/internal/metrics"
)

// ErrUnreachable replaces transport-level failures. The raw error is wrapped
// so call sites can still log it.
var ErrUnreachable = errors.New("unable to connect to the server, please check if the backend is running and accessible")

// StatusError is a non-2xx response from the backend. Message carries the
// backend's own message when one was present in the body.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

// Client is the HTTP client for the Knowrist backend API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// do executes a JSON request. token, when non-empty, is sent as a bearer
// token. Non-2xx responses come back as *StatusError with the backend's
// message when the body carried one.
func (c *Client) do(ctx context.Context, method, path, token string, body interface{}) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("backend: marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("backend: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordBackendRequest(metricPath(path), "unreachable")
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	metrics.RecordBackendRequest(metricPath(path), strconv.Itoa(resp.StatusCode))

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("backend: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{
			Code:    resp.StatusCode,
			Message: errorMessage(resp.StatusCode, respBody),
		}
	}

	return respBody, nil
}

// errorMessage prefers the backend's message field and falls back to a
// generic "HTTP <code>" string when the body is not parseable.
func errorMessage(status int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
}

// metricPath strips query strings so the backend-request counter stays
// low-cardinality.
func metricPath(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i]
	}
	return path
}

func queryPath(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}
