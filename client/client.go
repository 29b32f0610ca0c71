// Package client wraps the platform backend's REST API. It owns no state
// beyond the injected session: auth-header injection, JSON (de)serialization
// and error mapping live here so controllers stay pure state machines.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrUnauthorized is returned when the backend rejects the bearer token.
// The session is already cleared by the time callers see it.
var ErrUnauthorized = fmt.Errorf("session expired or unauthorized")

// APIError carries a backend failure with the server-supplied message when
// one was present in the response body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// TokenSource supplies the bearer token and clears it when the backend
// rejects it.
type TokenSource interface {
	Token() string
	Clear() error
}

// Client is the typed backend API client.
type Client struct {
	baseURL string
	http    *http.Client
	session TokenSource
}

// New builds a client against the given base URL, e.g.
// "http://localhost:5000/api".
func New(baseURL string, session TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		session: session,
	}
}

// doJSON sends a JSON request and decodes the 2xx response body into out
// (skipped when out is nil). authed requests carry the session bearer token;
// a 401/403 on an authed request clears the session and maps to
// ErrUnauthorized.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}, authed bool) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out, authed)
}

// send finishes a prepared request: common headers, auth, status mapping,
// response decoding.
func (c *Client) send(req *http.Request, out interface{}, authed bool) error {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if authed {
		if token := c.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach backend: %w", err)
	}
	defer resp.Body.Close()

	if authed && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
		_ = c.session.Clear()
		return ErrUnauthorized
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: serverMessage(raw, resp.StatusCode)}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// serverMessage extracts the backend's message field from an error body,
// falling back to a generic text.
func serverMessage(raw []byte, status int) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return fmt.Sprintf("backend returned status %d", status)
}
