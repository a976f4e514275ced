package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "modernc.org/sqlite"

	"victoriaos-connector/internal/trigger/repository"
	"victoriaos-connector/pkg/log"
)

//go:embed schema.sql
var schemaFS embed.FS

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New opens the database at opt.Path, applies the schema and returns a Store.
func New(ctx context.Context, opt repository.SQLiteOptions, l log.Logger) (repository.Store, error) {
	if opt.Path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	db, err := sql.Open("sqlite", opt.Path)
	if err != nil {
		return nil, err
	}
	// A single connection keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	if err := applySchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if l == nil {
		l = log.NewNop()
	}
	return &implRepository{db: db, l: l}, nil
}

func applySchema(ctx context.Context, db *sql.DB) error {
	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	if _, err := db.ExecContext(ctx, string(schemaSQL)); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("trigger/repository/sqlite.%s", method)
}
