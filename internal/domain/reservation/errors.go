package reservation

import "property-rental/internal/pkg/errs"

const (
	MsgPastStartDate = "The start date must be in the future."
	MsgPastEndDate   = "The end date must be in the future."
	MsgInvalidGuests = "Ensure this value is greater than or equal to 1."
)

var (
	ErrInvalidDateOrder = errs.Mark(
		errs.New("The end date must be after the start date."),
		errs.ErrBusinessRule,
	)
	ErrCapacityExceeded = errs.Mark(
		errs.New("The number of guests exceeds the maximum capacity of the property."),
		errs.ErrBusinessRule,
	)
	// Booking conflict with an existing confirmed stay.
	ErrSlotUnavailable = errs.Mark(
		errs.New("The property is not available for the selected dates."),
		errs.ErrBusinessRule,
	)
	// Availability probe conflict.
	ErrDateRangeUnavailable = errs.Mark(
		errs.New("The property is already booked for part of the requested date range."),
		errs.ErrBusinessRule,
	)
	ErrReservationNotFound = errs.Mark(errs.New("reservation not found"), errs.ErrNotFound)
)
