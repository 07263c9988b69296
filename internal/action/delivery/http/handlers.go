package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"repo-activity-feed/pkg/response"
)

// Receive godoc
// @Summary     Receive a GitHub webhook
// @Description Normalizes a push or pull_request delivery into an action and stores it.
// @Tags        Webhook
// @Accept      json
// @Produce     json
// @Param       X-GitHub-Event header string true "Event kind (push, pull_request)"
// @Param       body           body   object true "Raw GitHub webhook payload"
// @Success     200 {object} response.StatusResp
// @Failure     400 {object} response.ErrorResp "Invalid payload, missing fields or unsupported event"
// @Failure     413 {object} response.ErrorResp "Payload too large"
// @Failure     429 {object} response.ErrorResp "Too many requests"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /webhook/receiver [POST]
func (h *handler) Receive(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.limiter.Allow(c.ClientIP()); err != nil {
		h.l.Warnf(ctx, "action.delivery.http.Receive: %v", err)
		response.TooManyRequests(c)
		return
	}

	req, err := h.processReceiveReq(c)
	if err != nil {
		h.l.Warnf(ctx, "action.delivery.http.Receive: event=%q: %v", req.EventKind, err)
		h.writeError(c, err, req.EventKind)
		return
	}

	if _, err := h.uc.Receive(ctx, req.toInput()); err != nil {
		h.writeError(c, err, req.EventKind)
		return
	}

	response.Success(c)
}

// Notifications godoc
// @Summary     Poll new actions
// @Description Returns every action newer than the last poll, newest first, and advances the watermark.
// @Tags        Webhook
// @Produce     json
// @Success     200 {array}  notificationResp
// @Failure     500 {object} response.ErrorResp "Failed to fetch notifications"
// @Router      /webhook/notifications [GET]
func (h *handler) Notifications(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Poll(ctx)
	if err != nil {
		h.l.Errorf(ctx, "action.delivery.http.Notifications: %v", err)
		response.InternalError(c, MsgFetchNotifications)
		return
	}

	response.OK(c, h.newNotificationsResp(out))
}

func (h *handler) writeError(c *gin.Context, err error, eventKind string) {
	if errors.Is(err, errPayloadTooLarge) {
		response.PayloadTooLarge(c)
		return
	}
	if resp, ok := h.mapError(err, eventKind); ok {
		response.Error(c, err, resp)
		return
	}
	h.l.Errorf(c.Request.Context(), "action.delivery.http: event=%q: %v", eventKind, err)
	response.InternalError(c, "")
}
