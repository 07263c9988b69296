package http

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"repo-activity-feed/internal/action"
)

// maxPayloadBytes matches GitHub's cap on webhook payloads.
const maxPayloadBytes = 25 << 20

// processReceiveReq reads the event kind header and the raw body.
func (h *handler) processReceiveReq(c *gin.Context) (receiveReq, error) {
	req := receiveReq{EventKind: c.GetHeader(EventHeader)}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxPayloadBytes+1))
	if err != nil {
		return req, fmt.Errorf("%w: read body: %v", action.ErrInvalidPayload, err)
	}
	if len(body) > maxPayloadBytes {
		return req, fmt.Errorf("%w: limit is %d bytes", errPayloadTooLarge, maxPayloadBytes)
	}
	req.Payload = body

	return req, req.validate()
}
