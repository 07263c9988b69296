package model

import "time"

// ActionKind is the normalized type of a repository action.
type ActionKind string

const (
	ActionPush        ActionKind = "PUSH"
	ActionPullRequest ActionKind = "PULL_REQUEST"
	ActionMerge       ActionKind = "MERGE"
)

// Valid reports whether k is one of the known kinds.
func (k ActionKind) Valid() bool {
	switch k {
	case ActionPush, ActionPullRequest, ActionMerge:
		return true
	}
	return false
}

// Action is one normalized repository event. It is written once and never updated.
type Action struct {
	ID         string     // Storage identity, assigned on insert
	RequestID  string     // Natural id from the source event (commit SHA, PR id); advisory only
	Author     string     `validate:"required"`
	Kind       ActionKind `validate:"required,oneof=PUSH PULL_REQUEST MERGE"`
	FromBranch string     `validate:"required_unless=Kind PUSH,excluded_if=Kind PUSH"` // Empty means absent
	ToBranch   string     `validate:"required"`
	Timestamp  time.Time  `validate:"required"` // Always UTC
}

// HasFromBranch reports whether the action carries a source branch.
func (a Action) HasFromBranch() bool {
	return a.FromBranch != ""
}

// WatermarkID is the fixed key of the singleton watermark record.
const WatermarkID = "last_fetch"

// TimestampPrecision is the resolution at which action and watermark
// timestamps are stored and compared in every backend.
const TimestampPrecision = time.Microsecond

// CanonicalTime returns t in UTC truncated to TimestampPrecision.
func CanonicalTime(t time.Time) time.Time {
	return t.UTC().Truncate(TimestampPrecision)
}
