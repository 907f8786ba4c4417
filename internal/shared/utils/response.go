package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shop/internal/shared/biztime"
	"shop/internal/shared/constants"
	"shop/internal/shared/errors"
)

// StatusInternalServerError is the status label written in fault responses.
const StatusInternalServerError = "INTERNAL_SERVER_ERROR"

// FaultResponse represents the body returned for unexpected server faults
type FaultResponse struct {
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}

// HealthResponse represents the health check body
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// SuccessResponse sends a JSON body with a custom status code
func SuccessResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// CreatedResponse sends a 201 JSON body
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// MessageResponse sends a plain text body
func MessageResponse(c *gin.Context, statusCode int, message string) {
	c.String(statusCode, message)
}

// FieldErrorsResponse sends a 400 with a field to message map
func FieldErrorsResponse(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, fields)
}

// FaultErrorResponse sends the 500 fault body
func FaultErrorResponse(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, FaultResponse{
		Timestamp: biztime.NowUTC().Format(constants.TimestampLayout),
		Status:    StatusInternalServerError,
		Message:   message,
	})
}

// ErrorResponse sends a plain text error with custom status code
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	if statusCode >= http.StatusInternalServerError {
		FaultErrorResponse(c, message)
		return
	}
	c.String(statusCode, message)
}

// ErrorResponseWithError sends an error response based on error type.
// Expected application errors are written as plain text with their status code,
// anything else is a fault and its details are not exposed.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil && appErr.Code < http.StatusInternalServerError {
		c.String(appErr.Code, appErr.Message)
		return
	}

	_ = c.Error(err)
	FaultErrorResponse(c, "Internal server error occurred")
}
