package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SessionStore is the slice of the session the client needs: a fresh token
// per request, and teardown for the 401 path.
type SessionStore interface {
	Token(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// APIError carries the HTTP status and raw response body of a failed call.
// No structured error codes are parsed out of the body.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("HTTP %d %s", e.Status, http.StatusText(e.Status))
	if e.Body != "" {
		msg += " - " + e.Body
	}
	return msg
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, status int) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == status
}

// Client is the single point of outbound communication with the Momentum
// backend. All calls go through do.
type Client struct {
	baseURL        string
	http           *http.Client
	session        SessionStore
	onUnauthorized func()
	log            *slog.Logger
}

func New(baseURL string, timeout time.Duration, session SessionStore, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		session: session,
		log:     log,
	}
}

// SetOnUnauthorized installs the hook invoked after a 401 has torn down the
// session. It short-circuits normal caller-level error handling on purpose:
// whatever call hit the 401, the application is sent back to login.
func (c *Client) SetOnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// rawText marks a request body that is sent verbatim as text/plain instead
// of being JSON-encoded. The experience endpoint takes a bare integer.
type rawText string

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	contentType := ""
	switch b := body.(type) {
	case nil:
	case rawText:
		reader = strings.NewReader(string(b))
		contentType = "text/plain"
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	// The token is read fresh on every call; a teardown between calls is
	// picked up immediately.
	token, err := c.session.Token(ctx)
	if err != nil {
		return fmt.Errorf("read session token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"request_id", req.Header.Get("X-Request-Id"),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(resp.Body)
		if resp.StatusCode == http.StatusUnauthorized {
			// Forced session teardown, regardless of which call hit it.
			if clearErr := c.session.Clear(ctx); clearErr != nil {
				c.log.Warn("session teardown failed", "error", clearErr)
			}
			if c.onUnauthorized != nil {
				c.onUnauthorized()
			}
		}
		return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if out == nil {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	// Empty or non-JSON bodies are fine for fire-and-forget calls; the
	// caller gets the zero value.
	if len(data) == 0 {
		return nil
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
