package utils

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ParseTripDate accepts a calendar date (2025-05-01) or a full RFC3339
// timestamp as sent by browser date pickers.
func ParseTripDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTripDates, s)
	}
	return t.UTC(), nil
}

// TripDurationDays returns the day difference between start and end rounded
// up, so May 1 to May 4 is 3 days.
func TripDurationDays(start, end string) (int, error) {
	from, err := ParseTripDate(start)
	if err != nil {
		return 0, err
	}
	to, err := ParseTripDate(end)
	if err != nil {
		return 0, err
	}
	if to.Before(from) {
		return 0, fmt.Errorf("%w: end %s is before start %s", ErrInvalidTripDates, end, start)
	}
	return int(math.Ceil(to.Sub(from).Hours() / 24)), nil
}
