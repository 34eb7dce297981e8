package reservation

import (
	"time"

	"property-rental/internal/pkg/dateonly"
)

// StayPeriod is a half-open range of calendar dates [start, end). The
// checkout day is free for the next guest.
type StayPeriod struct {
	start time.Time
	end   time.Time
}

func NewStayPeriod(start, end time.Time) (StayPeriod, error) {
	start = dateonly.Normalize(start)
	end = dateonly.Normalize(end)
	if !end.After(start) {
		return StayPeriod{}, ErrInvalidDateOrder
	}
	return StayPeriod{start: start, end: end}, nil
}

func (p StayPeriod) Start() time.Time { return p.start }
func (p StayPeriod) End() time.Time   { return p.end }

func (p StayPeriod) Nights() int {
	return dateonly.DaysBetween(p.start, p.end)
}

// Overlaps uses the same predicate as the storage query:
// existing.start < end AND existing.end > start.
func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return other.start.Before(p.end) && other.end.After(p.start)
}
