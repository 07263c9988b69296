package action

import "errors"

var (
	// ErrInvalidPayload is returned for an empty body or a missing event kind.
	ErrInvalidPayload = errors.New("invalid payload or event type")
)
