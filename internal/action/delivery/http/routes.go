package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the webhook paths to Handler methods.
// Neither route is authenticated.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/receiver", h.Receive)
	rg.GET("/notifications", h.Notifications)
}
