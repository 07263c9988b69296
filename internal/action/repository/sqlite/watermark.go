package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	repo "repo-activity-feed/internal/action/repository"
	"repo-activity-feed/internal/model"
)

func (r *implRepository) GetWatermark(ctx context.Context) (time.Time, bool, error) {
	const query = `SELECT timestamp FROM last_fetch_timestamp WHERE id = ?`

	var micros int64
	err := r.db.QueryRowContext(ctx, query, model.WatermarkID).Scan(&micros)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetWatermark"), err)
		return time.Time{}, false, repo.ErrFailedToGet
	}
	return time.UnixMicro(micros).UTC(), true, nil
}

func (r *implRepository) AdvanceWatermark(ctx context.Context, ts time.Time) error {
	const query = `
		INSERT INTO last_fetch_timestamp (id, timestamp) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET timestamp = excluded.timestamp`

	if _, err := r.db.ExecContext(ctx, query, model.WatermarkID, ts.UTC().UnixMicro()); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AdvanceWatermark"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
