package memory

import (
	"context"
	"time"

	"repo-activity-feed/internal/model"
)

func (r *implRepository) GetWatermark(ctx context.Context) (time.Time, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.watermark == nil {
		return time.Time{}, false, nil
	}
	return *r.watermark, true, nil
}

func (r *implRepository) AdvanceWatermark(ctx context.Context, ts time.Time) error {
	ts = model.CanonicalTime(ts)

	r.mu.Lock()
	r.watermark = &ts
	r.mu.Unlock()

	return nil
}
