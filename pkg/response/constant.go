package response

import "time"

const (
	// MessageSuccess is the status value of a successful acknowledgement.
	MessageSuccess = "success"
	// DefaultErrorMessage is the body of any 500 without a more specific message.
	DefaultErrorMessage = "Internal server error"
	// TooManyRequestsMessage is the body of a 429.
	TooManyRequestsMessage = "Too many requests"
	// PayloadTooLargeMessage is the body of a 413.
	PayloadTooLargeMessage = "Payload too large"

	// TimestampFormat is how every timestamp leaves the API: UTC, "Z" suffix,
	// fractional seconds only when non-zero.
	TimestampFormat = time.RFC3339Nano
)
