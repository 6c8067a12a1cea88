// Package client is the HTTP client for the Aikya JSON API, used by the CLI.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/aikya-dev/aikya/internal/session"
)

// ErrUnauthorized is returned when the server rejects the credentials or the
// stored token. Callers distinguish it from transport failures, a dead server
// is not a reason to throw the local session away.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden is returned when the server knows the caller but the account
// lacks the admin flag.
var ErrForbidden = errors.New("admin access required")

// ErrNotFound is returned when the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// envelope is the response wrapper every API endpoint uses.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client represents an HTTP client for the Aikya API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a new API client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// SetToken attaches a bearer token to every subsequent request.
func (c *Client) SetToken(token string) {
	c.token = token
}

// LoginResult is the profile and token a successful login returns.
type LoginResult struct {
	Profile session.UserProfile
	Token   string
}

// Login authenticates the user and returns the profile with a bearer token.
func (c *Client) Login(email, password string) (*LoginResult, error) {
	payload := map[string]string{
		"email":    email,
		"password": password,
	}

	data, err := c.do(http.MethodPost, "/api/auth/login", payload)
	if err != nil {
		return nil, err
	}

	var resp struct {
		session.UserProfile
		Token string `json:"token"`
	}

	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to decode login response")
	}

	return &LoginResult{Profile: resp.UserProfile, Token: resp.Token}, nil
}

// Signup registers a new account and returns its profile.
func (c *Client) Signup(fullName, email, password string) (*session.UserProfile, error) {
	payload := map[string]string{
		"fullName": fullName,
		"email":    email,
		"password": password,
	}

	data, err := c.do(http.MethodPost, "/api/auth/signup", payload)
	if err != nil {
		return nil, err
	}

	var profile session.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, errors.Wrap(err, "failed to decode signup response")
	}

	return &profile, nil
}

// GetSection fetches the raw JSON document of one content section.
func (c *Client) GetSection(name string) (json.RawMessage, error) {
	return c.do(http.MethodGet, "/api/cms/"+name, nil)
}

// UpdateSection replaces the JSON document of one content section.
func (c *Client) UpdateSection(name string, value json.RawMessage) (json.RawMessage, error) {
	return c.doRaw(http.MethodPut, "/api/cms/"+name, []byte(value))
}

// do sends a JSON-encoded payload and unwraps the response envelope.
func (c *Client) do(method, path string, payload interface{}) (json.RawMessage, error) {
	var body []byte

	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal request")
		}

		body = raw
	}

	return c.doRaw(method, path, body)
}

func (c *Client) doRaw(method, path string, body []byte) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	req.Header.Set("Content-Type", "application/json")

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reach server")
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response")
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, errors.Wrapf(err, "unexpected response (status %d)", resp.StatusCode)
	}

	if env.Success {
		return env.Data, nil
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return nil, errors.Wrap(ErrUnauthorized, env.Message)
	case http.StatusForbidden:
		return nil, errors.Wrap(ErrForbidden, env.Message)
	case http.StatusNotFound:
		return nil, errors.Wrap(ErrNotFound, env.Message)
	default:
		return nil, fmt.Errorf("request failed (status %d): %s", resp.StatusCode, env.Message)
	}
}
