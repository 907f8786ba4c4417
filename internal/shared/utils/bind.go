package utils

import (
	"github.com/gin-gonic/gin"
)

// Sanitizer is implemented by bind models that clean their text fields
// before validation.
type Sanitizer interface {
	Sanitize()
}

// BindJSON decodes the request body into req, sanitizes and validates it.
// On failure it writes the 400 response and returns false.
// A body that cannot be decoded is reported under the "body" key.
func BindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		FieldErrorsResponse(c, map[string]string{"body": err.Error()})
		return false
	}

	if s, ok := req.(Sanitizer); ok {
		s.Sanitize()
	}

	if fields := ValidateStruct(req); fields != nil {
		FieldErrorsResponse(c, fields)
		return false
	}
	return true
}
