package repository

import (
	"context"
	"time"

	"repo-activity-feed/internal/model"
)

//go:generate mockery --name Repository --with-expecter

// Repository is the composed interface for the action domain data store.
type Repository interface {
	ActionRepository
	WatermarkRepository

	// Ping reports whether the datastore is reachable.
	Ping(ctx context.Context) error
}

// ActionRepository is the append-only store of normalized Actions.
type ActionRepository interface {
	// InsertAction appends one Action and returns it with ID assigned.
	// There is no dedup by RequestID.
	InsertAction(ctx context.Context, opt InsertActionOptions) (model.Action, error)
	// ListActionsSince returns Actions with Timestamp strictly after the
	// cutoff, newest first. Equal timestamps are ordered by insertion,
	// latest first.
	ListActionsSince(ctx context.Context, opt ListActionsSinceOptions) ([]model.Action, error)
}

// WatermarkRepository persists the singleton poll cursor.
//
// AdvanceWatermark is an unconditional overwrite. Two pollers that read the
// same watermark concurrently may both receive the same Actions, and the
// later write wins.
type WatermarkRepository interface {
	// GetWatermark returns the current watermark; ok is false when it was never set.
	GetWatermark(ctx context.Context) (ts time.Time, ok bool, err error)
	AdvanceWatermark(ctx context.Context, ts time.Time) error
}
