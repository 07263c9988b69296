package poller

import (
	"context"

	"repo-activity-feed/internal/model"
)

// Poller fetches the activity feed and renders it.
type Poller interface {
	// Fetch performs one poll and returns the new actions, newest first.
	Fetch(ctx context.Context) ([]model.Action, error)
	// Run polls on every tick until ctx is cancelled, writing one line per action.
	Run(ctx context.Context) error
}
