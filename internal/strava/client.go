package strava

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
)

// BaseURL is the Strava v1 API base. The v1 API is read-only and keyed by
// athlete id, so requests carry no credentials by default.
const BaseURL = "http://www.strava.com/api/v1"

// APIError is the single error kind surfaced by the client. It covers both
// transport failures (connection error, non-200 status) and decode failures
// (malformed JSON, missing top-level key), distinguished by the wrapped cause.
type APIError struct {
	Path string // relative API path that was requested
	Err  error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Client is a Strava v1 API client. Every resource object holds one and
// routes all of its fetches through load.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used by tests to point the client
// at a local server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new Strava API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    BaseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewAuthorizedClient creates a client whose requests carry tokens from the
// given source. The v1 API itself is unauthenticated; this exists for
// deployments that front it with OAuth.
func NewAuthorizedClient(tokenSource oauth2.TokenSource, opts ...Option) *Client {
	authed := []Option{WithHTTPClient(oauth2.NewClient(context.Background(), tokenSource))}
	return NewClient(append(authed, opts...)...)
}

// load performs one GET against baseURL+path, decodes the response body as a
// JSON object, and returns the value of the named top-level key. Every
// failure mode comes back as *APIError carrying the path.
func (c *Client) load(ctx context.Context, path, key string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, &APIError{Path: path, Err: fmt.Errorf("request failed: %w", err)}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Path: path, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Path: path, Err: fmt.Errorf("request failed: %w", err)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Path: path, Err: fmt.Errorf("request failed: status %d", resp.StatusCode)}
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &APIError{Path: path, Err: fmt.Errorf("parsing response failed: %w", err)}
	}
	value, ok := doc[key]
	if !ok {
		return nil, &APIError{Path: path, Err: fmt.Errorf("parsing response failed: missing key %q", key)}
	}
	return value, nil
}

// loadInto loads the named key and unmarshals it into v. A value of the
// wrong shape is a parse failure like any other.
func (c *Client) loadInto(ctx context.Context, path, key string, v any) error {
	value, err := c.load(ctx, path, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(value, v); err != nil {
		return &APIError{Path: path, Err: fmt.Errorf("parsing response failed: %w", err)}
	}
	return nil
}
