package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"repo-activity-feed/config"
)

// Connect parses cfg.URL, creates a client and verifies it with PING.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// Disconnect closes client. Safe to call with nil.
func Disconnect(ctx context.Context, client *redis.Client) error {
	if client == nil {
		return nil
	}
	return client.Close()
}
