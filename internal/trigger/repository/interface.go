package repository

import "context"

// Store persists the webhook identifier of each trigger instance.
type Store interface {
	// Get returns the stored identifier, or "" when nothing is stored.
	Get(ctx context.Context, scopeID string) (string, error)
	Set(ctx context.Context, scopeID, webhookID string) error
	Clear(ctx context.Context, scopeID string) error
	Close() error
}
