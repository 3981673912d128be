package apierrors

import (
	"net/http"

	"speakeasy/internal/observability"

	"github.com/gin-gonic/gin"
)

var logger = observability.NewLogger()

// ErrorResponse is the JSON structure returned to API clients
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// SetLogger replaces the package logger, mainly so tests and bootstrap share one.
func SetLogger(l *observability.Logger) {
	if l != nil {
		logger = l
	}
}

// respond writes the error response and logs correlation info
func respond(c *gin.Context, statusCode int, detail string) {
	ctx := c.Request.Context()
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "status_code", Value: statusCode},
		observability.Field{Key: "error_detail", Value: detail},
	)
	logger.Info(ctx, "API error response")

	c.JSON(statusCode, ErrorResponse{Detail: detail})
}

// InternalError sends a 500 response carrying the error text as detail.
// Provider and store failures are reported to the caller verbatim.
func InternalError(c *gin.Context, internalErr error) {
	ctx := c.Request.Context()
	logger.Error(ctx, "internal error", internalErr)
	respond(c, http.StatusInternalServerError, internalErr.Error())
}
