package product

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

func parseBound(c *gin.Context, name string, parse func(string) (time.Time, error)) (time.Time, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return time.Time{}, fmt.Errorf("%s is required", name)
	}
	t, err := parse(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be a date or date-time", name)
	}
	return t, nil
}
