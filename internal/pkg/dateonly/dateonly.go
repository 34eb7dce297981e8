package dateonly

import (
	"time"

	"property-rental/internal/pkg/errs"
)

const Layout = time.DateOnly

var ErrInvalidDate = errs.New("date must use the YYYY-MM-DD format")

// Parse reads a calendar date. The result is midnight UTC.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, errs.Mark(err, ErrInvalidDate)
	}
	return t, nil
}

// Normalize drops the time of day and location, keeping the calendar date.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts whole calendar days from start to end.
func DaysBetween(start, end time.Time) int {
	return int(Normalize(end).Sub(Normalize(start)).Hours() / 24)
}

func Format(t time.Time) string {
	return t.Format(Layout)
}
