// Package gateway is the HTTP client for the backend REST API that owns all
// entity state. Every call is a single round trip: no retries, no caching,
// and no client-side timeout beyond request context cancellation.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"eventdash/internal/config"
	"eventdash/internal/monitoring"
)

// APIError is a non-2xx backend response. Message and Details carry the
// backend's error and details fields verbatim.
type APIError struct {
	StatusCode int
	Message    string
	Details    []string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(conf *config.BackendConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(conf.BaseURL, "/"),
		http:    &http.Client{},
	}
}

// errBody matches the backend's error envelope. Some endpoints report the
// message under "error", others under "message".
type errBody struct {
	Err     string   `json:"error"`
	Message string   `json:"message"`
	Details []string `json:"details"`
}

// do performs one backend call. token may be empty for unauthenticated
// endpoints. body is JSON-encoded when non-nil; out is JSON-decoded from a
// 2xx response when non-nil.
func (c *Client) do(ctx context.Context, operation, method, path, token string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("json.Marshal -> %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		monitoring.ObserveBackendCall(operation, 0, time.Since(start))
		return fmt.Errorf("c.http.Do -> %w", err)
	}
	defer resp.Body.Close()
	monitoring.ObserveBackendCall(operation, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(resp)
	}

	if out != nil {
		if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("json.Decode -> %w", err)
		}
	}

	return nil
}

func (c *Client) decodeError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("request failed with status %d", resp.StatusCode),
	}

	var parsed errBody
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err == nil {
		if parsed.Err != "" {
			apiErr.Message = parsed.Err
		} else if parsed.Message != "" {
			apiErr.Message = parsed.Message
		}
		apiErr.Details = parsed.Details
	}

	return apiErr
}
