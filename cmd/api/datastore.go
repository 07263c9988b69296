package main

import (
	"context"
	"fmt"

	"repo-activity-feed/config"
	pgConn "repo-activity-feed/config/postgre"
	redisConn "repo-activity-feed/config/redis"
	sqliteConn "repo-activity-feed/config/sqlite"
	"repo-activity-feed/internal/action/repository"
	"repo-activity-feed/internal/action/repository/memory"
	pgRepo "repo-activity-feed/internal/action/repository/postgre"
	redisRepo "repo-activity-feed/internal/action/repository/redis"
	sqliteRepo "repo-activity-feed/internal/action/repository/sqlite"
	"repo-activity-feed/pkg/log"
)

// openDatastore connects the configured backend and prepares its schema.
// The returned close func releases the connection.
func openDatastore(ctx context.Context, cfg *config.Config, logger log.Logger) (repository.Repository, func(), error) {
	switch cfg.Datastore.Driver {
	case config.DriverMemory:
		logger.Warn(ctx, "Using in-memory datastore: actions are lost on restart")
		return memory.New(logger), func() {}, nil

	case config.DriverSQLite:
		db, err := sqliteConn.Connect(ctx, cfg.SQLite)
		if err != nil {
			return nil, nil, fmt.Errorf("connect sqlite: %w", err)
		}
		closeFn := func() { _ = sqliteConn.Disconnect(context.Background(), db) }
		if err := sqliteRepo.CreateSchema(ctx, db); err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("create sqlite schema: %w", err)
		}
		logger.Infof(ctx, "SQLite datastore ready at %s", cfg.SQLite.Path)
		return sqliteRepo.New(db, logger), closeFn, nil

	case config.DriverPostgres:
		db, err := pgConn.Connect(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		closeFn := func() { _ = pgConn.Disconnect(context.Background(), db) }
		if err := pgRepo.CreateSchema(ctx, db); err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("create postgres schema: %w", err)
		}
		logger.Infof(ctx, "PostgreSQL datastore ready at %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.Database)
		return pgRepo.New(db, logger), closeFn, nil

	case config.DriverRedis:
		client, err := redisConn.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		closeFn := func() { _ = redisConn.Disconnect(context.Background(), client) }
		logger.Info(ctx, "Redis datastore ready")
		return redisRepo.New(client, logger, ""), closeFn, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, cfg.Datastore.Driver)
	}
}
