package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// APIKeyHeader carries the upstream API key on every request.
const APIKeyHeader = "x-mcp-api-key"

const defaultTimeout = 30 * time.Second

// Client calls the upstream content API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a content API client. baseURL has no trailing
// slash; apiKey may be empty when the upstream does not require one.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// NewClientWithHTTP creates a client over a caller-supplied HTTP
// client. Tests use this to point at an httptest server.
func NewClientWithHTTP(baseURL, apiKey string, httpClient *http.Client) *Client {
	return &Client{baseURL: baseURL, apiKey: apiKey, http: httpClient}
}

// Get fetches endpoint (path plus query, starting with "/") and
// decodes the enveloped payload. Failures of any kind come back inside
// the envelope: Success false and a human-readable Error string. HTTP
// status failures read as "HTTP error! status: <code>", which tool
// output surfaces verbatim.
func Get[T any](ctx context.Context, c *Client, endpoint string) Envelope[T] {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return Envelope[T]{Success: false, Error: err.Error()}
	}
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		slog.Warn("content api request failed", "endpoint", endpoint, "error", err)
		return Envelope[T]{Success: false, Error: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return Envelope[T]{
			Success: false,
			Error:   fmt.Sprintf("HTTP error! status: %d", resp.StatusCode),
		}
	}

	var env Envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		slog.Warn("content api decode failed", "endpoint", endpoint, "error", err)
		return Envelope[T]{Success: false, Error: err.Error()}
	}
	return env
}
