// Package upstream is the shared client for the platform REST API. Every
// outbound call attaches the session's bearer token, transparently persists
// refreshed tokens announced via the New-Token response header, and raises
// the cross-cutting auth signals the fault handler consumes.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/orientavoc/orientation-platform/internal/core/domain"
	"github.com/orientavoc/orientation-platform/internal/core/ports"
	"github.com/orientavoc/orientation-platform/internal/events"
)

const (
	newTokenHeader = "New-Token"
	defaultTimeout = 10 * time.Second
)

type Client struct {
	base     string
	http     *http.Client
	sessions ports.SessionStore
	bus      *events.Bus
	log      zerolog.Logger
}

func NewClient(base string, sessions ports.SessionStore, bus *events.Bus, log zerolog.Logger) *Client {
	return &Client{
		base:     base,
		http:     &http.Client{Timeout: defaultTimeout},
		sessions: sessions,
		bus:      bus,
		log:      log,
	}
}

// GetJSON performs a GET on behalf of a session and decodes the JSON body
// into out.
func (c *Client) GetJSON(ctx context.Context, sessionID, path string, out any) error {
	return c.doJSON(ctx, sessionID, http.MethodGet, path, nil, out)
}

// PostJSON performs a POST with a JSON body on behalf of a session and
// decodes the JSON response into out when out is non-nil.
func (c *Client) PostJSON(ctx context.Context, sessionID, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		payload = bytes.NewReader(b)
	}
	return c.doJSON(ctx, sessionID, http.MethodPost, path, payload, out)
}

func (c *Client) doJSON(ctx context.Context, sessionID, method, path string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := c.sessions.Token(ctx, sessionID)
	if err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.bus.Publish(events.Signal{Type: events.SignalError, SessionID: sessionID, Message: "no se pudo conectar con el servidor"})
		return err
	}
	defer resp.Body.Close()

	// Transparent token refresh: the backend rotates tokens by announcing
	// the replacement in a response header.
	if fresh := resp.Header.Get(newTokenHeader); fresh != "" {
		if err := c.sessions.SaveToken(ctx, sessionID, fresh); err != nil {
			c.log.Warn().Err(err).Str("session_id", sessionID).Msg("failed to persist refreshed token")
		}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.bus.Publish(events.Signal{Type: events.SignalUnauthorized, SessionID: sessionID, Message: apiMessage(resp.Body)})
		return domain.ErrSessionExpired
	case resp.StatusCode == http.StatusForbidden:
		c.bus.Publish(events.Signal{Type: events.SignalForbidden, SessionID: sessionID, Message: apiMessage(resp.Body)})
		return domain.ErrForbidden
	case resp.StatusCode >= 400:
		msg := apiMessage(resp.Body)
		c.bus.Publish(events.Signal{Type: events.SignalError, SessionID: sessionID, Message: msg})
		return fmt.Errorf("upstream %s %s: status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode upstream response: %w", err)
	}
	return nil
}

// apiMessage extracts the error message from an upstream error envelope,
// returning "" when there is none to show.
func apiMessage(body io.Reader) string {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		return ""
	}
	if envelope.Error != "" {
		return envelope.Error
	}
	return envelope.Message
}
