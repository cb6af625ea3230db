package helpers

import (
	"fmt"
	"time"
)

// BirthDateLayout is the textual day-month-year pattern used for birth dates
// everywhere a date crosses the API boundary.
const BirthDateLayout = "02-01-2006"

// ParseBirthDate parses a day-month-year date string.
func ParseBirthDate(value string) (time.Time, error) {
	t, err := time.Parse(BirthDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected dd-mm-yyyy: %w", value, err)
	}
	return t, nil
}

// FormatBirthDate formats a date using the day-month-year pattern.
func FormatBirthDate(t time.Time) string {
	return t.Format(BirthDateLayout)
}

// ParseDuration parses a duration string, falling back to a default when the
// value is empty or malformed.
func ParseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
