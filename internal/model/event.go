package model

// WebhookEvent names a task event a webhook can subscribe to.
type WebhookEvent string

const (
	EventTaskCreated   WebhookEvent = "task.created"
	EventTaskUpdated   WebhookEvent = "task.updated"
	EventTaskCompleted WebhookEvent = "task.completed"
	EventTaskDeleted   WebhookEvent = "task.deleted"
)

// WebhookEvents lists every subscribable event.
var WebhookEvents = []WebhookEvent{
	EventTaskCreated,
	EventTaskUpdated,
	EventTaskCompleted,
	EventTaskDeleted,
}

// Valid reports whether e is a known event.
func (e WebhookEvent) Valid() bool {
	for _, known := range WebhookEvents {
		if e == known {
			return true
		}
	}
	return false
}

// Webhook is a webhook subscription. Secret is only present in the creation response.
type Webhook struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	URL         string         `json:"url"`
	Events      []WebhookEvent `json:"events"`
	Description string         `json:"description,omitempty"`
	Active      bool           `json:"active"`
	Secret      string         `json:"secret,omitempty"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
}

// WebhookList is the body of GET /webhooks.
type WebhookList struct {
	Webhooks   []Webhook  `json:"webhooks"`
	Pagination Pagination `json:"pagination"`
}

// WebhookStats is the body of GET /webhooks/{id}/stats.
type WebhookStats struct {
	WebhookID            string `json:"webhook_id"`
	TotalDeliveries      int    `json:"total_deliveries"`
	SuccessfulDeliveries int    `json:"successful_deliveries"`
	FailedDeliveries     int    `json:"failed_deliveries"`
	LastDeliveryAt       string `json:"last_delivery_at,omitempty"`
	LastSuccessAt        string `json:"last_success_at,omitempty"`
	LastFailureAt        string `json:"last_failure_at,omitempty"`
}
