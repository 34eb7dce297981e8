//go:build e2e

package e2e

import (
	"time"

	"property-rental/internal/pkg/dateonly"
)

// Date returns the calendar date days from today in UTC as YYYY-MM-DD.
func Date(days int) string {
	return dateonly.Format(dateonly.Normalize(time.Now().UTC()).AddDate(0, 0, days))
}
