package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"repo-activity-feed/internal/action/repository"
	"repo-activity-feed/pkg/log"
)

// Key layout, relative to the configured prefix.
const (
	actionsKey   = "webhook_events"            // hash: id -> JSON record
	timelineKey  = "webhook_events:by_ts"      // zset: seq:id scored by unix micros
	sequenceKey  = "webhook_events:seq"        // INCR counter for insertion order
	watermarkKey = "last_fetch_timestamp:last_fetch"
)

type implRepository struct {
	client redis.UniversalClient
	l      log.Logger
	prefix string
}

// New creates a Redis-backed Repository. prefix is prepended to every key
// so several deployments can share one database; it may be empty.
func New(client redis.UniversalClient, l log.Logger, prefix string) repository.Repository {
	if client == nil {
		panic("action/repository/redis: client is required")
	}
	return &implRepository{client: client, l: l, prefix: prefix}
}

// Ping checks the server connection.
func (r *implRepository) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Ping"), err)
		return repository.ErrFailedToPing
	}
	return nil
}

func (r *implRepository) key(name string) string {
	return r.prefix + name
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("action/repository/redis.%s", method)
}
