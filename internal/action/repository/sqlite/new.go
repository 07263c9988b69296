package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"repo-activity-feed/internal/action/repository"
	"repo-activity-feed/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository. Call CreateSchema once before use.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("action/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// Ping checks the database connection.
func (r *implRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Ping"), err)
		return repository.ErrFailedToPing
	}
	return nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("action/repository/sqlite.%s", method)
}
