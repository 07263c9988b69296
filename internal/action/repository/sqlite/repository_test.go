package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repo-activity-feed/config"
	sqliteConn "repo-activity-feed/config/sqlite"
	"repo-activity-feed/internal/action/repository"
	"repo-activity-feed/internal/action/repository/repotest"
	"repo-activity-feed/internal/action/repository/sqlite"
	"repo-activity-feed/pkg/log"
)

func newRepo(t *testing.T, path string) repository.Repository {
	t.Helper()
	ctx := context.Background()

	db, err := sqliteConn.Connect(ctx, config.SQLiteConfig{Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteConn.Disconnect(ctx, db) })

	require.NoError(t, sqlite.CreateSchema(ctx, db))
	return sqlite.New(db, log.NewNop())
}

func TestRepository(t *testing.T) {
	repotest.Run(t, func(t *testing.T) repository.Repository {
		return newRepo(t, sqliteConn.MemoryPath)
	})
}

func TestSchemaIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := sqliteConn.Connect(ctx, config.SQLiteConfig{Path: sqliteConn.MemoryPath})
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, sqlite.CreateSchema(ctx, db))
	require.NoError(t, sqlite.CreateSchema(ctx, db))
}

func TestPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "feed.db")

	first := newRepo(t, path)
	_, err := first.InsertAction(ctx, repository.InsertActionOptions{Action: repotest.Push("alice", repotest.At(0))})
	require.NoError(t, err)
	require.NoError(t, first.AdvanceWatermark(ctx, repotest.At(0)))

	second := newRepo(t, path)
	list, err := second.ListActionsSince(ctx, repository.ListActionsSinceOptions{})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	ts, ok, err := second.GetWatermark(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, repotest.At(0).Equal(ts))
}

func TestClosedDatabase(t *testing.T) {
	ctx := context.Background()
	db, err := sqliteConn.Connect(ctx, config.SQLiteConfig{Path: sqliteConn.MemoryPath})
	require.NoError(t, err)
	require.NoError(t, sqlite.CreateSchema(ctx, db))

	r := sqlite.New(db, log.NewNop())
	require.NoError(t, db.Close())

	_, err = r.InsertAction(ctx, repository.InsertActionOptions{Action: repotest.Push("alice", repotest.At(0))})
	assert.True(t, errors.Is(err, repository.ErrFailedToInsert))

	_, err = r.ListActionsSince(ctx, repository.ListActionsSinceOptions{})
	assert.True(t, errors.Is(err, repository.ErrFailedToList))

	_, _, err = r.GetWatermark(ctx)
	assert.True(t, errors.Is(err, repository.ErrFailedToGet))

	assert.True(t, errors.Is(r.AdvanceWatermark(ctx, repotest.At(0)), repository.ErrFailedToUpdate))
	assert.True(t, errors.Is(r.Ping(ctx), repository.ErrFailedToPing))
}

func TestUnknownActionSkipped(t *testing.T) {
	ctx := context.Background()
	db, err := sqliteConn.Connect(ctx, config.SQLiteConfig{Path: sqliteConn.MemoryPath})
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, sqlite.CreateSchema(ctx, db))

	r := sqlite.New(db, log.NewNop())
	_, err = r.InsertAction(ctx, repository.InsertActionOptions{Action: repotest.Push("alice", repotest.At(0))})
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		`INSERT INTO webhook_events (id, request_id, author, action, from_branch, to_branch, timestamp) VALUES (?, ?, ?, ?, NULL, ?, ?)`,
		"foreign", "", "eve", "ISSUE", "main", repotest.At(time.Second).UnixMicro())
	require.NoError(t, err)

	list, err := r.ListActionsSince(ctx, repository.ListActionsSinceOptions{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "alice", list[0].Author)
}
