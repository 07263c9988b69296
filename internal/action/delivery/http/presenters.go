package http

import (
	"bytes"

	"repo-activity-feed/internal/action"
	"repo-activity-feed/pkg/response"
)

// EventHeader carries the webhook event kind.
const EventHeader = "X-GitHub-Event"

// --- Request DTOs ---

type receiveReq struct {
	EventKind string
	Payload   []byte
}

func (r receiveReq) validate() error {
	if r.EventKind == "" || len(bytes.TrimSpace(r.Payload)) == 0 {
		return action.ErrInvalidPayload
	}
	return nil
}

func (r receiveReq) toInput() action.ReceiveInput {
	return action.ReceiveInput{
		EventKind: r.EventKind,
		Payload:   r.Payload,
	}
}

// --- Response DTOs ---

// notificationResp is one entry of the notifications array.
type notificationResp struct {
	Action     string             `json:"action" example:"PULL_REQUEST" enums:"PUSH,PULL_REQUEST,MERGE"`
	Author     string             `json:"author" example:"bob"`
	FromBranch *string            `json:"from_branch" example:"feature"` // null for PUSH
	ToBranch   string             `json:"to_branch" example:"main"`
	Timestamp  response.Timestamp `json:"timestamp" swaggertype:"string" example:"2024-01-01T00:00:00Z"`
}

func (h *handler) newNotificationsResp(out action.PollOutput) []notificationResp {
	items := make([]notificationResp, len(out.Notifications))
	for i, n := range out.Notifications {
		items[i] = notificationResp{
			Action:    string(n.Kind),
			Author:    n.Author,
			ToBranch:  n.ToBranch,
			Timestamp: response.Timestamp(n.Timestamp),
		}
		if n.FromBranch != "" {
			from := n.FromBranch
			items[i].FromBranch = &from
		}
	}
	return items
}
