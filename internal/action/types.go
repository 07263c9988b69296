package action

import (
	"time"

	"repo-activity-feed/internal/model"
)

// --- UseCase Inputs ---

type ReceiveInput struct {
	EventKind string // X-GitHub-Event header value
	Payload   []byte
}

// --- UseCase Outputs ---

type ReceiveOutput struct {
	Action model.Action
}

// Notification is the client-facing view of an Action.
type Notification struct {
	Kind       model.ActionKind
	Author     string
	FromBranch string // Empty for PUSH
	ToBranch   string
	Timestamp  time.Time
}

type PollOutput struct {
	Notifications []Notification // Newest first
}
