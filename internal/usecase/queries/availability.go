package queries

import (
	"context"
	"time"

	"property-rental/internal/domain/property"
	"property-rental/internal/domain/reservation"
	"property-rental/internal/infra"
	"property-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStayDates      = errs.Mark(errs.New("start_date must be before end_date."), errs.ErrInvalidRequest)
	ErrInvalidGuestsQuantity = errs.Mark(errs.New("guests_quantity must be greater than 0."), errs.ErrInvalidRequest)
)

type AvailabilityRequest struct {
	PropertyID     uuid.UUID
	StartDate      time.Time
	EndDate        time.Time
	GuestsQuantity int
}

type OverlapReader interface {
	HasOverlap(ctx context.Context, propertyID uuid.UUID, period reservation.StayPeriod) (bool, error)
}

type AvailabilityQueries interface {
	// Check returns nil when the property can host the stay.
	Check(ctx context.Context, req AvailabilityRequest) error
}

type availabilityQueriesImpl struct {
	properties PropertyReadStore
	overlaps   OverlapReader
}

func NewAvailabilityQueries(properties PropertyReadStore, overlaps OverlapReader) AvailabilityQueries {
	return &availabilityQueriesImpl{properties: properties, overlaps: overlaps}
}

func (q *availabilityQueriesImpl) Check(ctx context.Context, req AvailabilityRequest) error {
	if req.GuestsQuantity <= 0 {
		return ErrInvalidGuestsQuantity
	}
	period, err := reservation.NewStayPeriod(req.StartDate, req.EndDate)
	if err != nil {
		return ErrInvalidStayDates
	}

	prop, err := q.properties.FindByID(ctx, req.PropertyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return property.ErrPropertyNotFound
		}
		return err
	}

	if req.GuestsQuantity > int(prop.Capacity) {
		return reservation.ErrCapacityExceeded
	}

	overlapping, err := q.overlaps.HasOverlap(ctx, req.PropertyID, period)
	if err != nil {
		return err
	}
	if overlapping {
		return reservation.ErrDateRangeUnavailable
	}
	return nil
}
