package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrEnvelopeFailed = errors.New("response envelope reports failure")

// Unwrap decodes a response body into T. Bodies wrapped in an Envelope are
// unwrapped first; a failed envelope returns its error.
func Unwrap[T any](data any) (T, error) {
	var zero T

	raw, err := json.Marshal(data)
	if err != nil {
		return zero, fmt.Errorf("model: encode body: %w", err)
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err == nil {
		if _, wrapped := probe["success"]; wrapped {
			var env Envelope[T]
			if err := json.Unmarshal(raw, &env); err != nil {
				return zero, fmt.Errorf("model: decode envelope: %w", err)
			}
			if !env.Success {
				if env.Error != nil {
					return zero, fmt.Errorf("%w: [%s] %s", ErrEnvelopeFailed, env.Error.Code, env.Error.Message)
				}
				return zero, ErrEnvelopeFailed
			}
			if env.Data == nil {
				return zero, nil
			}
			return *env.Data, nil
		}
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return zero, fmt.Errorf("model: decode body: %w", err)
	}
	return out, nil
}
