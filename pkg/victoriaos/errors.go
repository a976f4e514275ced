package victoriaos

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrMissingAPIKey      = errors.New("victoriaos: api key is required")
	ErrUnknownEnvironment = errors.New("victoriaos: unknown environment")
)

// APIError is a well-formed error body returned by the API:
// {"error": {"code": "...", "message": "...", "details": {...}}}.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string]any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("victoriaos api error %d [%s]: %s", e.StatusCode, e.Code, e.Message)
}

// TransportError is a failure with a plain message: connection errors,
// timeouts, or non-2xx answers without a structured body.
type TransportError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	return e.Message
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UnknownError is a failure that carries nothing usable.
type UnknownError struct{}

func (UnknownError) Error() string {
	return "victoriaos: unknown error"
}

// NormalizedError is the single user-facing error produced by Normalize.
// The underlying failure stays reachable through errors.As / errors.Is.
type NormalizedError struct {
	msg   string
	cause error
}

func (e *NormalizedError) Error() string { return e.msg }
func (e *NormalizedError) Unwrap() error { return e.cause }

// Normalize translates any failure into one readable message. It never
// returns nil, even for a nil input.
func Normalize(err error) error {
	var normalized *NormalizedError
	if errors.As(err, &normalized) {
		return normalized
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		msg := fmt.Sprintf("%s error [%s]: %s", ServiceName, apiErr.Code, apiErr.Message)
		if len(apiErr.Details) > 0 {
			details, mErr := json.Marshal(apiErr.Details)
			if mErr != nil {
				details = []byte(fmt.Sprint(apiErr.Details))
			}
			msg += " - Details: " + string(details)
		}
		return &NormalizedError{msg: msg, cause: err}
	}

	var unknown UnknownError
	if err == nil || errors.As(err, &unknown) {
		return &NormalizedError{msg: "unknown error communicating with " + ServiceName, cause: err}
	}

	msg := err.Error()
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		msg = transportErr.Message
	}
	if msg == "" {
		return &NormalizedError{msg: "unknown error communicating with " + ServiceName, cause: err}
	}
	return &NormalizedError{msg: fmt.Sprintf("error communicating with %s: %s", ServiceName, msg), cause: err}
}

// errorEnvelope is the structured error body shape.
type errorEnvelope struct {
	Error *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details,omitempty"`
	} `json:"error"`
}

// classifyResponse builds the tagged error for a non-2xx response.
func classifyResponse(status int, body []byte) error {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != nil && (env.Error.Code != "" || env.Error.Message != "") {
		return &APIError{
			StatusCode: status,
			Code:       env.Error.Code,
			Message:    env.Error.Message,
			Details:    env.Error.Details,
		}
	}
	return &TransportError{
		StatusCode: status,
		Message:    fmt.Sprintf("request failed with status code %d", status),
	}
}
