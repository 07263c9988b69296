package http

import (
	"errors"

	"repo-activity-feed/internal/action"
	"repo-activity-feed/internal/model"
	"repo-activity-feed/internal/webhook"
	"repo-activity-feed/pkg/response"
)

var errPayloadTooLarge = errors.New("payload too large")

// Client error reasons.
const (
	ReasonInvalidPayload   = "invalid_payload"
	ReasonValidation       = "validation_error"
	ReasonUnsupportedEvent = "unsupported_event"
)

// Response messages.
const (
	MsgInvalidPayload     = "Invalid payload or event type"
	MsgMissingPushData    = "Missing required push event data"
	MsgMissingPRData      = "Missing required PR event data"
	MsgUnsupportedEvent   = "Unsupported event type"
	MsgFetchNotifications = "Failed to fetch notifications"
)

// mapError translates use-case errors into a 400 body. ok is false for
// anything that is not the client's fault.
func (h *handler) mapError(err error, eventKind string) (resp response.ErrorResp, ok bool) {
	var verr *webhook.ValidationError
	switch {
	case errors.Is(err, action.ErrInvalidPayload):
		return response.ErrorResp{Error: MsgInvalidPayload, Reason: ReasonInvalidPayload}, true
	case errors.Is(err, webhook.ErrUnsupportedEventKind):
		return response.ErrorResp{Error: MsgUnsupportedEvent, Reason: ReasonUnsupportedEvent, Kind: eventKind}, true
	case errors.As(err, &verr):
		msg := MsgMissingPushData
		if verr.Kind == string(model.EventPullRequest) {
			msg = MsgMissingPRData
		}
		return response.ErrorResp{Error: msg, Reason: ReasonValidation, Fields: verr.Fields()}, true
	default:
		return response.ErrorResp{}, false
	}
}
