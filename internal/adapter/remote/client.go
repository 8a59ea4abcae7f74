// Package remote implements the resource API ports against the real
// fitness API over HTTP.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"fittrack/internal/apierr"
	"fittrack/internal/domain"
)

// Client performs JSON calls against the remote API and normalizes every
// failure into a typed apierr.Error. Transport-level failures are wrapped
// as plain errors so callers only ever classify through apierr.
type Client struct {
	rest     *resty.Client
	sessions domain.SessionSource
	logger   *zap.Logger
}

// NewClient creates a client rooted at baseURL. The session source supplies
// bearer tokens for Authenticated calls.
func NewClient(baseURL string, sessions domain.SessionSource, logger *zap.Logger) *Client {
	rest := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json")
	return &Client{rest: rest, sessions: sessions, logger: logger}
}

// Request performs one call. A nil body sends no body; a nil out discards
// the response. 204 responses leave out untouched. The bearer header is set
// only when token is non-empty.
func (c *Client) Request(ctx context.Context, method, path string, body any, token string, out any) error {
	req := c.rest.R().SetContext(ctx)
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("api request %s %s: %w", method, path, err)
	}

	if resp.IsError() {
		apiErr := errorFromResponse(resp)
		c.logger.Debug("api call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", apiErr.Status))
		return apiErr
	}

	if out == nil || resp.StatusCode() == http.StatusNoContent {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// Authenticated performs a call with the current session's token. When no
// session token exists it fails fast with a 401-classified error, without
// attempting the network call.
func (c *Client) Authenticated(ctx context.Context, method, path string, body any, out any) error {
	sess, err := c.sessions.Session(ctx)
	if err != nil || sess == nil || sess.AccessToken == "" {
		return apierr.New(http.StatusUnauthorized, "No active session", nil)
	}
	return c.Request(ctx, method, path, body, sess.AccessToken, out)
}

// errorFromResponse builds the typed error for a non-2xx response: a JSON
// body's message field wins, then the raw body text, then the status's
// reason phrase. The status code is always preserved for classification.
func errorFromResponse(resp *resty.Response) *apierr.Error {
	status := resp.StatusCode()
	raw := resp.Body()

	var message string
	var structured any
	if strings.Contains(resp.Header().Get("Content-Type"), "application/json") {
		var parsed map[string]any
		if json.Unmarshal(raw, &parsed) == nil {
			structured = parsed
			if m, ok := parsed["message"].(string); ok {
				message = m
			}
		}
	}
	if message == "" {
		message = strings.TrimSpace(string(raw))
	}
	if message == "" {
		message = http.StatusText(status)
	}
	return apierr.New(status, message, structured)
}
