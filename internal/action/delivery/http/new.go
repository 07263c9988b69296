package http

import (
	"github.com/gin-gonic/gin"

	"repo-activity-feed/internal/action"
	"repo-activity-feed/internal/webhook"
	"repo-activity-feed/pkg/log"
)

// Handler is the public interface for the action HTTP delivery layer.
type Handler interface {
	Receive(c *gin.Context)
	Notifications(c *gin.Context)
}

type handler struct {
	l       log.Logger
	uc      action.UseCase
	limiter *webhook.RateLimiter
}

// New creates a new HTTP handler for the action domain. A nil limiter
// disables rate limiting.
func New(l log.Logger, uc action.UseCase, limiter *webhook.RateLimiter) Handler {
	if limiter == nil {
		limiter = webhook.NewRateLimiter(webhook.RateLimitConfig{})
	}
	return &handler{
		l:       l,
		uc:      uc,
		limiter: limiter,
	}
}
