package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewStatusResp returns the acknowledgement body for a successful write.
func NewStatusResp() StatusResp {
	return StatusResp{Status: MessageSuccess}
}

// Success sends 200 {"status":"success"}.
func Success(c *gin.Context) {
	c.JSON(http.StatusOK, NewStatusResp())
}

// OK sends 200 JSON with data as the whole body, unwrapped.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error sends 400 with resp. An empty resp.Error is filled from err.
func Error(c *gin.Context, err error, resp ErrorResp) {
	if resp.Error == "" && err != nil {
		resp.Error = err.Error()
	}
	c.JSON(http.StatusBadRequest, resp)
}

// InternalError sends 500. The cause is never exposed; message defaults to
// DefaultErrorMessage when empty.
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = DefaultErrorMessage
	}
	c.JSON(http.StatusInternalServerError, ErrorResp{Error: message})
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, ErrorResp{Error: TooManyRequestsMessage})
}

// PayloadTooLarge sends 413.
func PayloadTooLarge(c *gin.Context) {
	c.JSON(http.StatusRequestEntityTooLarge, ErrorResp{Error: PayloadTooLargeMessage})
}

// ServiceUnavailable sends 503 with data.
func ServiceUnavailable(c *gin.Context, data any) {
	c.JSON(http.StatusServiceUnavailable, data)
}
