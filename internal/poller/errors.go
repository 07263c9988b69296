package poller

import "errors"

var (
	ErrUnexpectedStatus = errors.New("unexpected status from notifications endpoint")
	ErrDecodeFeed       = errors.New("failed to decode notifications")
)
