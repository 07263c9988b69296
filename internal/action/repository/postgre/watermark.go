package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	repo "repo-activity-feed/internal/action/repository"
	"repo-activity-feed/internal/model"
)

func (r *implRepository) GetWatermark(ctx context.Context) (time.Time, bool, error) {
	dao := new(watermarkDao)
	err := r.db.NewSelect().Model(dao).Where("id = ?", model.WatermarkID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetWatermark"), err)
		return time.Time{}, false, repo.ErrFailedToGet
	}
	return dao.Timestamp.UTC(), true, nil
}

func (r *implRepository) AdvanceWatermark(ctx context.Context, ts time.Time) error {
	dao := &watermarkDao{ID: model.WatermarkID, Timestamp: model.CanonicalTime(ts)}

	_, err := r.db.NewInsert().
		Model(dao).
		On("CONFLICT (id) DO UPDATE").
		Set("timestamp = EXCLUDED.timestamp").
		Exec(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AdvanceWatermark"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
