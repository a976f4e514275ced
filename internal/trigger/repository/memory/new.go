package memory

import (
	"context"
	"sync"

	"victoriaos-connector/internal/trigger/repository"
)

type implRepository struct {
	mu  sync.RWMutex
	ids map[string]string
}

// New creates an in-process Store. State is lost on restart.
func New() repository.Store {
	return &implRepository{ids: make(map[string]string)}
}

func (r *implRepository) Get(_ context.Context, scopeID string) (string, error) {
	if scopeID == "" {
		return "", repository.ErrEmptyScope
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ids[scopeID], nil
}

func (r *implRepository) Set(_ context.Context, scopeID, webhookID string) error {
	if err := repository.CheckArgs(scopeID, webhookID); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids[scopeID] = webhookID
	return nil
}

func (r *implRepository) Clear(_ context.Context, scopeID string) error {
	if scopeID == "" {
		return repository.ErrEmptyScope
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.ids, scopeID)
	return nil
}

func (r *implRepository) Close() error { return nil }
