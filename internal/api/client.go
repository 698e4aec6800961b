package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Backend defines the recipe endpoints the UI depends on. It is implemented
// by *Client and can be faked in tests.
type Backend interface {
	FetchUser(ctx context.Context) (UserPatch, error)
	Generate(ctx context.Context, req GenerateRequest) (Recipe, error)
	FindImage(ctx context.Context, query string) (string, error)
	Modify(ctx context.Context, recipe Recipe, modType string) (Recipe, error)
	Pairings(ctx context.Context, recipe Recipe) (Pairings, error)
	Swaps(ctx context.Context, recipe Recipe, ingredient string) ([]Suggestion, error)
	SaveRecipe(ctx context.Context, recipe Recipe) (Recipe, error)
	DeleteRecipe(ctx context.Context, id string) error
	SavePantry(ctx context.Context, pantry []string) error
	SavePlanner(ctx context.Context, plan MealPlan) error
	SavePreferences(ctx context.Context, prefs Preferences) error
}

// Ensure Client implements Backend at compile time.
var _ Backend = (*Client)(nil)

// IdentityHeader carries the session identity on every request.
const IdentityHeader = "X-User-ID"

// Client talks to the Recipe Universe HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	identity  string
}

const (
	defaultBaseURL   = "127.0.0.1:5000"
	defaultUserAgent = "mise/0.1"
	defaultTimeout   = 60 * time.Second
)

// NewClient builds a Client for the backend at base (host:port or URL) that
// identifies itself as identity. A zero timeout uses the default.
func NewClient(base, identity string, timeout time.Duration) (*Client, error) {
	u, err := parseBaseURL(base)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(identity) == "" {
		return nil, fmt.Errorf("identity is required")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:   u,
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
		identity:  identity,
	}, nil
}

// BaseURL returns the normalized backend address.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// Get issues a GET and decodes the JSON response into dest.
func (c *Client) Get(ctx context.Context, path string, dest any) error {
	return c.do(ctx, http.MethodGet, path, nil, dest)
}

// Post JSON-encodes body, issues a POST and decodes the response into dest.
func (c *Client) Post(ctx context.Context, path string, body, dest any) error {
	return c.do(ctx, http.MethodPost, path, body, dest)
}

// Delete issues a DELETE and decodes the response into dest.
func (c *Client) Delete(ctx context.Context, path string, dest any) error {
	return c.do(ctx, http.MethodDelete, path, nil, dest)
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	if c == nil {
		return transportError(0, "client is nil", nil)
	}
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return transportError(0, fmt.Sprintf("encode request: %v", err), err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return transportError(0, fmt.Sprintf("create request: %v", err), err)
	}
	req.Header.Set(IdentityHeader, c.identity)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(0, networkMessage(err), err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}
	if dest == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return transportError(resp.StatusCode, fmt.Sprintf("decode response: %v", err), err)
	}
	return nil
}

// statusError turns a non-2xx response into an Error, preferring the server's
// own message and falling back to the status code.
func statusError(resp *http.Response) *Error {
	fallback := fmt.Sprintf("HTTP error! status: %d", resp.StatusCode)
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return transportError(resp.StatusCode, fallback, err)
	}
	var payload errorBody
	if err := json.Unmarshal(raw, &payload); err != nil {
		return transportError(resp.StatusCode, fallback, nil)
	}
	switch {
	case strings.TrimSpace(payload.Error) != "":
		return transportError(resp.StatusCode, strings.TrimSpace(payload.Error), nil)
	case strings.TrimSpace(payload.Message) != "":
		return transportError(resp.StatusCode, strings.TrimSpace(payload.Message), nil)
	default:
		return transportError(resp.StatusCode, fallback, nil)
	}
}

func networkMessage(err error) string {
	if errors.Is(err, context.Canceled) {
		return "Request cancelled"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "Request timed out"
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return "Request timed out"
		}
		if urlErr.Err != nil {
			return fmt.Sprintf("Network error: %v", urlErr.Err)
		}
	}
	return fmt.Sprintf("Network error: %v", err)
}

func parseBaseURL(base string) (*url.URL, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base %q: %w", base, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
