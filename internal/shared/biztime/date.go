package biztime

import (
	"encoding/json"
	"fmt"
	"time"

	"shop/internal/shared/constants"
)

// Date is a calendar date rendered as yyyy-MM-dd in JSON.
type Date time.Time

// NewDate wraps t.
func NewDate(t time.Time) Date {
	return Date(t)
}

// Time returns the underlying instant.
func (d Date) Time() time.Time {
	return time.Time(d)
}

func (d Date) String() string {
	return FormatDate(time.Time(d))
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	t, err := time.ParseInLocation(constants.DateLayout, s, Location())
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	*d = Date(t)
	return nil
}
