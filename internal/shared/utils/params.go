package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseIDParam parses an unsigned numeric ID from a URL path parameter.
// The raw value is returned alongside so callers can echo it in messages.
func ParseIDParam(c *gin.Context, paramName string) (uint, string, bool) {
	raw := c.Param(paramName)
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		return 0, raw, false
	}
	return uint(parsed), raw, true
}
