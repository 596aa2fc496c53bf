// Package upstream is the typed client for the remote HR API. Every
// endpoint answers with the same envelope: data, message, isSuccess and
// errors. Transport-level authentication (bearer attach, 401 recovery)
// lives in AuthTransport.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-admin-gateway/internal/pkg/tokenstore"
	"github.com/google/uuid"
)

// envelope is the fixed response wrapper of the upstream API.
type envelope struct {
	Data      json.RawMessage `json:"data"`
	Message   *string         `json:"message"`
	IsSuccess bool            `json:"isSuccess"`
	Errors    []string        `json:"errors"`
}

// APIError is an upstream failure: either a non-2xx status or a 2xx
// envelope with isSuccess=false.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []string
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("upstream error (status %d): %s: %s", e.StatusCode, e.Message, strings.Join(e.Errors, "; "))
	}
	return fmt.Sprintf("upstream error (status %d): %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a client whose requests carry the stored bearer token and
// recover from 401 via a single-flight refresh.
func New(baseURL string, timeout time.Duration, store tokenstore.Store) *Client {
	base := strings.TrimRight(baseURL, "/")
	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &AuthTransport{
				Store:   store,
				BaseURL: base,
			},
		},
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	// Bodies are buffered so AuthTransport can rewind them on replay.
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 400 {
			return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return fmt.Errorf("failed to decode upstream response: %w", err)
	}

	if resp.StatusCode >= 400 || !env.IsSuccess {
		return newAPIError(resp.StatusCode, env)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode upstream data: %w", err)
		}
	}
	return nil
}

func newAPIError(status int, env envelope) *APIError {
	message := http.StatusText(status)
	if env.Message != nil && *env.Message != "" {
		message = *env.Message
	}
	return &APIError{
		StatusCode: status,
		Message:    message,
		Errors:     env.Errors,
	}
}
