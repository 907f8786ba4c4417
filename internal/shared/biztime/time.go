// Package biztime provides utilities for business timezone calculations.
// All storage uses UTC. The business timezone is only used to render dates on
// the wire and to interpret date-only range bounds.
package biztime

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"shop/internal/shared/constants"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "UTC"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
// If tz is empty, defaults to UTC.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// Location returns the business timezone location, initializing the default on first use.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatDate renders t as yyyy-MM-dd in the business timezone.
func FormatDate(t time.Time) string {
	return t.In(Location()).Format(constants.DateLayout)
}

// StartOfDayUTC returns 00:00:00 of t's business day, converted to UTC.
func StartOfDayUTC(t time.Time) time.Time {
	bizTime := t.In(Location())
	return time.Date(bizTime.Year(), bizTime.Month(), bizTime.Day(), 0, 0, 0, 0, Location()).UTC()
}

// EndOfDayUTC returns 23:59:59.999999999 of t's business day, converted to UTC.
func EndOfDayUTC(t time.Time) time.Time {
	bizTime := t.In(Location())
	return time.Date(bizTime.Year(), bizTime.Month(), bizTime.Day(), 23, 59, 59, 999999999, Location()).UTC()
}

// ParseRangeStart parses a lower range bound. Accepted forms are RFC 3339,
// yyyy-MM-ddTHH:mm:ss (business timezone) and yyyy-MM-dd (start of that day).
func ParseRangeStart(s string) (time.Time, error) {
	t, dateOnly, err := parseBound(s)
	if err != nil {
		return time.Time{}, err
	}
	if dateOnly {
		return StartOfDayUTC(t), nil
	}
	return t.UTC(), nil
}

// ParseRangeEnd parses an upper range bound. A date-only value covers the whole day.
func ParseRangeEnd(s string) (time.Time, error) {
	t, dateOnly, err := parseBound(s)
	if err != nil {
		return time.Time{}, err
	}
	if dateOnly {
		return EndOfDayUTC(t), nil
	}
	return t.UTC(), nil
}

func parseBound(s string) (time.Time, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false, fmt.Errorf("empty date")
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, false, nil
	}
	if t, err := time.ParseInLocation(constants.DateTimeLayout, s, Location()); err == nil {
		return t, false, nil
	}
	// LocalDateTime style values may carry fractional seconds
	if t, err := time.ParseInLocation("2006-01-02T15:04:05.999999999", s, Location()); err == nil {
		return t, false, nil
	}
	if t, err := time.ParseInLocation(constants.DateLayout, s, Location()); err == nil {
		return t, true, nil
	}
	return time.Time{}, false, fmt.Errorf("invalid date format %q", s)
}
