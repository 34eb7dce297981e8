package commission

import (
	"fmt"
	"time"

	"property-rental/internal/pkg/errs"
)

var (
	ErrIncompleteDateFilter = errs.Mark(errs.New("Required year and month."), errs.ErrInvalidRequest)
	ErrInvalidMonth         = errs.Mark(errs.New("Month must be between 1 and 12."), errs.ErrInvalidRequest)
	ErrInvalidYear          = errs.Mark(errs.New("Year must be between 1 and 9999."), errs.ErrInvalidRequest)
)

// Period restricts an aggregation to one calendar month.
type Period struct {
	Year  int
	Month time.Month
}

// NewPeriod validates an optional year/month pair. Both absent means no
// filter and yields nil.
func NewPeriod(year, month *int) (*Period, error) {
	if year == nil && month == nil {
		return nil, nil
	}
	if year == nil || month == nil {
		return nil, ErrIncompleteDateFilter
	}
	if *month < 1 || *month > 12 {
		return nil, ErrInvalidMonth
	}
	if *year < 1 || *year > 9999 {
		return nil, ErrInvalidYear
	}
	return &Period{Year: *year, Month: time.Month(*month)}, nil
}

// Range returns the half-open date range [from, to) covered by the period.
func (p Period) Range() (from, to time.Time) {
	from = time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}
