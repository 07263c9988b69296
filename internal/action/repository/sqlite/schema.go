package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// seq is the insertion sequence used to order equal timestamps.
// Timestamps are UTC unix microseconds so ordering is plain integer order.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS webhook_events (
		seq         INTEGER PRIMARY KEY AUTOINCREMENT,
		id          TEXT    NOT NULL UNIQUE,
		request_id  TEXT    NOT NULL DEFAULT '',
		author      TEXT    NOT NULL,
		action      TEXT    NOT NULL,
		from_branch TEXT,
		to_branch   TEXT    NOT NULL,
		timestamp   INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_webhook_events_timestamp ON webhook_events (timestamp DESC, seq DESC)`,
	`CREATE TABLE IF NOT EXISTS last_fetch_timestamp (
		id        TEXT    PRIMARY KEY,
		timestamp INTEGER NOT NULL
	)`,
}

// CreateSchema creates the tables if they do not exist.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
