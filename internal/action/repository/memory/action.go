package memory

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	repo "repo-activity-feed/internal/action/repository"
	"repo-activity-feed/internal/model"
)

// InsertAction appends a copy of opt.Action.
func (r *implRepository) InsertAction(ctx context.Context, opt repo.InsertActionOptions) (model.Action, error) {
	a := opt.Action
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.Timestamp = model.CanonicalTime(a.Timestamp)

	r.mu.Lock()
	r.actions = append(r.actions, a)
	r.mu.Unlock()

	return a, nil
}

// ListActionsSince scans from the newest insert backwards, then stable-sorts
// by timestamp so ties keep latest-insert-first order.
func (r *implRepository) ListActionsSince(ctx context.Context, opt repo.ListActionsSinceOptions) ([]model.Action, error) {
	var cutoff time.Time
	if opt.Cutoff != nil {
		cutoff = model.CanonicalTime(*opt.Cutoff)
	}

	r.mu.RLock()
	out := make([]model.Action, 0)
	for i := len(r.actions) - 1; i >= 0; i-- {
		a := r.actions[i]
		if opt.Cutoff != nil && !a.Timestamp.After(cutoff) {
			continue
		}
		out = append(out, a)
	}
	r.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b model.Action) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return out, nil
}

// Ping always succeeds.
func (r *implRepository) Ping(ctx context.Context) error {
	return nil
}
