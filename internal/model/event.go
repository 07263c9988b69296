package model

// EventKind is the webhook discriminator sent in the X-GitHub-Event header.
type EventKind string

const (
	EventPush        EventKind = "push"
	EventPullRequest EventKind = "pull_request"
)

// PullRequestActionClosed is the top-level "action" value GitHub sends when a
// pull request is closed, merged or not.
const PullRequestActionClosed = "closed"
