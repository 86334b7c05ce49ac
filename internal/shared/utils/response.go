package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/shared/errors"
)

// Response status values. 2xx responses carry "success", 4xx carry "fail"
// and 5xx carry "error", matching the wire contract of the API.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// SuccessResponse sends a success envelope, merging the extra fields into
// the top-level object: {"status":"success", ...extra}.
func SuccessResponse(c *gin.Context, statusCode int, extra gin.H) {
	body := gin.H{"status": StatusSuccess}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

// DataResponse sends {"status":"success","data":{...}}.
func DataResponse(c *gin.Context, statusCode int, data gin.H) {
	c.JSON(statusCode, gin.H{"status": StatusSuccess, "data": data})
}

// ErrorResponse sends {"status":"fail"|"error","message":...} based on the
// status code class.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	status := StatusFail
	if statusCode >= http.StatusInternalServerError {
		status = StatusError
	}
	c.JSON(statusCode, gin.H{"status": status, "message": message})
}

// ErrorResponseWithError maps an application error to the error envelope.
// Errors that are not AppError are reported as a generic 500 so raw store
// error text never reaches the client.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		ErrorResponse(c, appErr.Code, appErr.Message)
		return
	}
	ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
}

// NoContentResponse sends a no content response
func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
