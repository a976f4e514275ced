package trigger

import (
	"context"
	"fmt"

	"victoriaos-connector/internal/model"
	"victoriaos-connector/pkg/victoriaos"
)

// Caller performs authenticated API calls. *victoriaos.Client satisfies it.
type Caller interface {
	Do(ctx context.Context, req victoriaos.Request) (*victoriaos.Response, error)
}

// URLResolver returns the public callback URL for a trigger instance.
type URLResolver func(sc model.Scope) (string, error)

// StaticURL resolves every scope to the same callback URL.
func StaticURL(url string) URLResolver {
	return func(model.Scope) (string, error) {
		if url == "" {
			return "", ErrNoCallbackURL
		}
		return url, nil
	}
}

// RegisterInput is what the trigger subscribes to.
type RegisterInput struct {
	Events []model.WebhookEvent
	// Description defaults to one naming the workflow.
	Description string
}

// DefaultDescription is the description used when none is configured.
func DefaultDescription(workflowName string) string {
	return fmt.Sprintf("Workflow Trigger - %s", workflowName)
}

// State is the persisted lifecycle state of a trigger instance.
type State struct {
	Registered bool   `json:"registered"`
	WebhookID  string `json:"webhook_id,omitempty"`
}

func (s State) String() string {
	if !s.Registered {
		return "UNREGISTERED"
	}
	return "REGISTERED(" + s.WebhookID + ")"
}

// ActivateOutput describes what Activate did.
type ActivateOutput struct {
	// Existing is true when the stored webhook was still present remotely.
	Existing  bool
	WebhookID string
}
