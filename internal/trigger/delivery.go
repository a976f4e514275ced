package trigger

import (
	"context"
	"encoding/json"
	"time"
)

// Delivery is one inbound callback, relayed as received.
type Delivery struct {
	ID         string          `json:"id"`
	ScopeID    string          `json:"scope_id"`
	ReceivedAt time.Time       `json:"received_at"`
	Payload    json.RawMessage `json:"payload"`
}

// Sink receives relayed deliveries.
type Sink interface {
	Deliver(ctx context.Context, d Delivery) error
}
