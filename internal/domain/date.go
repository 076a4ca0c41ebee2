package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for due dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date into midnight UTC.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidDate, s)
	}
	return d, nil
}

// FormatDate renders the calendar date part of t.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysUntil returns the number of whole calendar days from the date of now to
// the date of due. Clock times and zones only matter through the calendar date
// each value carries; the result is negative when due lies in the past.
func DaysUntil(now, due time.Time) int {
	from := civilDate(now)
	to := civilDate(due)
	return int(to.Sub(from).Hours() / 24)
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
