package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used on the wire.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date at UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// DayOfYear returns the ordinal day, 1 for January 1st.
func DayOfYear(t time.Time) int {
	return t.YearDay()
}

// DayOfYearString is DayOfYear for a YYYY-MM-DD string.
func DayOfYearString(s string) (int, error) {
	t, err := ParseDate(s)
	if err != nil {
		return 0, err
	}
	return DayOfYear(t), nil
}
