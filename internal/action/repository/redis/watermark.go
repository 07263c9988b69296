package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	repo "repo-activity-feed/internal/action/repository"
	"repo-activity-feed/internal/model"
	"repo-activity-feed/pkg/datemath"
)

func (r *implRepository) GetWatermark(ctx context.Context) (time.Time, bool, error) {
	raw, err := r.client.Get(ctx, r.key(watermarkKey)).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetWatermark"), err)
		return time.Time{}, false, repo.ErrFailedToGet
	}

	ts, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		r.l.Errorf(ctx, "%s parse %q: %v", r.dsn("GetWatermark"), raw, err)
		return time.Time{}, false, repo.ErrFailedToGet
	}
	return ts.UTC(), true, nil
}

func (r *implRepository) AdvanceWatermark(ctx context.Context, ts time.Time) error {
	err := r.client.Set(ctx, r.key(watermarkKey), datemath.Format(model.CanonicalTime(ts)), 0).Err()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AdvanceWatermark"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
