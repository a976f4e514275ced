package victoriaos

import (
	"net/http"
	"time"

	"victoriaos-connector/pkg/log"
)

// Config configures a Client.
type Config struct {
	Credentials Credentials
	// BaseURL overrides the environment-selected base URL.
	BaseURL string
	Timeout time.Duration
	// HTTPClient supplies the underlying transport. Authentication is layered on top.
	HTTPClient *http.Client
	Logger     log.Logger
	Metrics    *Metrics
}

// Request is a single API call relative to the base URL.
type Request struct {
	Method string
	// Path starts with a slash and may carry a query suffix.
	Path string
	// Body is JSON-encoded when non-nil.
	Body any
}

// Response is a decoded API answer.
type Response struct {
	StatusCode int
	// Data is the decoded JSON body, nil when the body was empty.
	Data       any
	Raw        []byte
	RateLimits RateLimits
}

// RateLimits carries the x-ratelimit-* response headers verbatim.
type RateLimits struct {
	Limit     string `json:"limit,omitempty"`
	Remaining string `json:"remaining,omitempty"`
	Reset     string `json:"reset,omitempty"`
}

// Empty reports whether no rate-limit header was present.
func (r RateLimits) Empty() bool {
	return r.Limit == "" && r.Remaining == "" && r.Reset == ""
}

// ExtractRateLimits reads the rate-limit headers from h.
func ExtractRateLimits(h http.Header) RateLimits {
	return RateLimits{
		Limit:     h.Get(headerRateLimitLimit),
		Remaining: h.Get(headerRateLimitRemaining),
		Reset:     h.Get(headerRateLimitReset),
	}
}
