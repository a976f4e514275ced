package trigger

import "victoriaos-connector/internal/model"

// Trigger node identity.
const (
	Name         = "victoriaOsTrigger"
	DisplayName  = "VictoriaOS Trigger"
	WebhookName  = "default"
	WebhookPath  = "webhook"
	HTTPMethod   = "POST"
	ResponseMode = "onReceived"
)

// Descriptor is the published shape of the trigger.
type Descriptor struct {
	Name         string               `json:"name" yaml:"name"`
	DisplayName  string               `json:"displayName" yaml:"displayName"`
	Credential   string               `json:"credential" yaml:"credential"`
	Webhook      string               `json:"webhook" yaml:"webhook"`
	Method       string               `json:"method" yaml:"method"`
	ResponseMode string               `json:"responseMode" yaml:"responseMode"`
	Path         string               `json:"path" yaml:"path"`
	Events       []model.WebhookEvent `json:"events" yaml:"events"`
}

// Describe returns the trigger descriptor. An empty path uses WebhookPath.
func Describe(path string) Descriptor {
	if path == "" {
		path = WebhookPath
	}
	return Descriptor{
		Name:         Name,
		DisplayName:  DisplayName,
		Credential:   "victoriaOsApi",
		Webhook:      WebhookName,
		Method:       HTTPMethod,
		ResponseMode: ResponseMode,
		Path:         path,
		Events:       model.WebhookEvents,
	}
}

// ValidateEvents checks that events is a non-empty subset of the known events.
func ValidateEvents(events []model.WebhookEvent) error {
	if len(events) == 0 {
		return ErrNoEvents
	}
	for _, e := range events {
		if !e.Valid() {
			return &EventError{Event: e}
		}
	}
	return nil
}

// EventError names the offending event.
type EventError struct {
	Event model.WebhookEvent
}

func (e *EventError) Error() string {
	return ErrInvalidEvent.Error() + ": " + string(e.Event)
}

func (e *EventError) Unwrap() error { return ErrInvalidEvent }

// ParseEvents converts raw names into events, dropping blanks.
func ParseEvents(raw []string) []model.WebhookEvent {
	events := make([]model.WebhookEvent, 0, len(raw))
	for _, r := range raw {
		if r == "" {
			continue
		}
		events = append(events, model.WebhookEvent(r))
	}
	return events
}
