package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"victoriaos-connector/internal/trigger/repository"
)

// Get returns "" when the scope has no row.
func (r *implRepository) Get(ctx context.Context, scopeID string) (string, error) {
	if scopeID == "" {
		return "", repository.ErrEmptyScope
	}

	const query = `SELECT webhook_id FROM trigger_webhooks WHERE scope_id = ?`
	var id string
	err := r.db.QueryRowContext(ctx, query, scopeID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Get"), err)
		return "", fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}
	return id, nil
}

func (r *implRepository) Set(ctx context.Context, scopeID, webhookID string) error {
	if err := repository.CheckArgs(scopeID, webhookID); err != nil {
		return err
	}

	const query = `
		INSERT INTO trigger_webhooks (scope_id, webhook_id, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(scope_id) DO UPDATE SET webhook_id = excluded.webhook_id, updated_at = excluded.updated_at`
	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := r.db.ExecContext(ctx, query, scopeID, webhookID, now); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Set"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSet, err)
	}
	return nil
}

func (r *implRepository) Clear(ctx context.Context, scopeID string) error {
	if scopeID == "" {
		return repository.ErrEmptyScope
	}

	const query = `DELETE FROM trigger_webhooks WHERE scope_id = ?`
	if _, err := r.db.ExecContext(ctx, query, scopeID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Clear"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToClear, err)
	}
	return nil
}

func (r *implRepository) Close() error {
	return r.db.Close()
}
