package http

import pkgResponse "victoriaos-connector/pkg/response"

type statusResponse struct {
	ScopeID    string `json:"scope_id"`
	State      string `json:"state"`
	WebhookID  string `json:"webhook_id,omitempty"`
	Registered bool   `json:"registered"`
	Verified   bool   `json:"verified"`

	CheckedAt pkgResponse.DateTime `json:"checked_at"`
}

type acceptedResponse struct {
	Status     string               `json:"status"`
	DeliveryID string               `json:"delivery_id"`
	ReceivedAt pkgResponse.DateTime `json:"received_at"`
}

type activateResponse struct {
	ScopeID   string `json:"scope_id"`
	WebhookID string `json:"webhook_id"`
	Existing  bool   `json:"existing"`

	ActivatedAt pkgResponse.DateTime `json:"activated_at"`
}
