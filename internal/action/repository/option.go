package repository

import (
	"time"

	"repo-activity-feed/internal/model"
)

// InsertActionOptions holds the Action to append. An empty Action.ID is
// assigned by the store.
type InsertActionOptions struct {
	Action model.Action
}

// ListActionsSinceOptions selects Actions strictly newer than Cutoff.
// A nil Cutoff selects everything.
type ListActionsSinceOptions struct {
	Cutoff *time.Time
}
