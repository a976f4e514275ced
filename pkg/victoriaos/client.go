package victoriaos

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/oauth2"

	"victoriaos-connector/pkg/log"
)

// Client is the authenticated HTTP transport for the VictoriaOS REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	l          log.Logger
}

// NewClient creates a Client. The API key is sent as a bearer token on every request.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Credentials.Validate(); err != nil {
		return nil, err
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = cfg.Credentials.BaseURL()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var base http.RoundTripper = http.DefaultTransport
	if cfg.HTTPClient != nil && cfg.HTTPClient.Transport != nil {
		base = cfg.HTTPClient.Transport
	}
	if cfg.Metrics != nil {
		base = cfg.Metrics.InstrumentRoundTripper(base)
	}

	l := cfg.Logger
	if l == nil {
		l = log.NewNop()
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &oauth2.Transport{
				Source: oauth2.StaticTokenSource(&oauth2.Token{
					AccessToken: cfg.Credentials.APIKey,
					TokenType:   "Bearer",
				}),
				Base: base,
			},
		},
		l: l,
	}, nil
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// URL joins path to the base URL, adding the leading slash when missing.
func (c *Client) URL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// Do performs req. Non-2xx answers come back as *APIError when the body is a
// structured error and *TransportError otherwise.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	var body io.Reader
	if req.Body != nil {
		raw, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s %s body: %w", req.Method, req.Path, err)
		}
		body = bytes.NewReader(raw)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.URL(req.Path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s %s request: %w", method, req.Path, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Message: transportMessage(err), Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read response: %v", err), Err: err}
	}

	limits := ExtractRateLimits(resp.Header)
	if !limits.Empty() {
		c.l.Debugf(ctx, "victoriaos: %s %s rate limit %s/%s reset %s", method, req.Path, limits.Remaining, limits.Limit, limits.Reset)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, classifyResponse(resp.StatusCode, raw)
	}

	out := &Response{StatusCode: resp.StatusCode, Raw: raw, RateLimits: limits}
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &out.Data); err != nil {
			return nil, &TransportError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("invalid JSON response: %v", err), Err: err}
		}
	}
	return out, nil
}

// TestCredentials checks the API key by fetching the current user.
func (c *Client) TestCredentials(ctx context.Context) error {
	_, err := c.Do(ctx, Request{Method: http.MethodGet, Path: CredentialTestPath})
	return err
}

// transportMessage strips the url.Error prefix so only the cause is reported.
func transportMessage(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	var ue interface{ Unwrap() error }
	if errors.As(err, &ue) {
		if inner := ue.Unwrap(); inner != nil {
			return inner.Error()
		}
	}
	return err.Error()
}
