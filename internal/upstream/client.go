// Package upstream is the transport layer in front of the third-party
// ticketing provider. It performs the three outbound calls the service
// needs (task list, user list, login) with bounded timeouts and maps HTTP
// failures onto the service error taxonomy. No retries: a failed round
// trip fails the caller.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/iliyamo/tickethub/internal/model"
	"github.com/iliyamo/tickethub/internal/ticket"
)

// Client calls the upstream provider over HTTP. The zero value is not
// usable; construct with New.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client rooted at baseURL. Every request is bounded by the
// given timeout.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchTasks retrieves the full task collection from the provider.
func (c *Client) FetchTasks(ctx context.Context) ([]model.RawTask, error) {
	var payload struct {
		Todos []model.RawTask `json:"todos"`
	}
	if err := c.getJSON(ctx, "/todos", &payload); err != nil {
		return nil, err
	}
	return payload.Todos, nil
}

// FetchUsers retrieves the full user collection from the provider.
func (c *Client) FetchUsers(ctx context.Context) ([]model.RawUser, error) {
	var payload struct {
		Users []model.RawUser `json:"users"`
	}
	if err := c.getJSON(ctx, "/users", &payload); err != nil {
		return nil, err
	}
	return payload.Users, nil
}

// Login forwards credentials to the provider's identity endpoint. A 2xx
// answer yields a Session; a 4xx answer means the provider reached a
// verdict and the credentials are wrong (ErrLoginRejected); anything else
// is an infrastructure failure (ErrUnavailable).
func (c *Client) Login(ctx context.Context, username, password string) (model.Session, error) {
	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return model.Session{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return model.Session{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return model.Session{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// fall through to decode
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return model.Session{}, ErrLoginRejected
	default:
		return model.Session{}, fmt.Errorf("%w: login status %d", ErrUnavailable, resp.StatusCode)
	}

	var raw struct {
		Username    string `json:"username"`
		Token       string `json:"token"`
		AccessToken string `json:"accessToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return model.Session{}, fmt.Errorf("decode login response: %w", ticket.ErrMalformedSource)
	}
	session := model.Session{Username: raw.Username, Token: raw.Token}
	if session.Token == "" {
		// newer provider versions renamed the field
		session.Token = raw.AccessToken
	}
	if session.Username == "" {
		session.Username = username
	}
	return session, nil
}

// Ping probes the provider root for the health endpoint. Any 2xx-5xx HTTP
// answer counts as reachable; only a transport failure does not.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/todos/1", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	resp.Body.Close()
	return nil
}

// getJSON performs a GET against path and decodes the 2xx body into out.
// Non-2xx statuses and transport errors classify as ErrUnavailable; a body
// that fails to decode classifies as malformed source data.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: GET %s status %d", ErrUnavailable, path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, ticket.ErrMalformedSource)
	}
	return nil
}
