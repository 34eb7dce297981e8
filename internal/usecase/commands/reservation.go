package commands

import (
	"context"

	"property-rental/internal/domain/reservation"
	reqdto "property-rental/internal/handler/dto/request"
	"property-rental/internal/infra"
	"property-rental/internal/pkg/errs"
	"property-rental/internal/pkg/metrics"
	"property-rental/internal/usecase/queries"
	"property-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

// CacheInvalidator drops derived data that a new booking makes stale.
type CacheInvalidator interface {
	Invalidate(ctx context.Context)
}

type ReservationCommands interface {
	Create(ctx context.Context, req reqdto.CreateReservationRequest) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	factory            *reservation.Factory
	commissions        CommissionGenerator
	reservationQueries queries.ReservationQueries
	cache              CacheInvalidator
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	commissions CommissionGenerator,
	reservationQueries queries.ReservationQueries,
	cache CacheInvalidator,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:                uow,
		factory:            factory,
		commissions:        commissions,
		reservationQueries: reservationQueries,
		cache:              cache,
	}
}

func (uc *reservationCommandsImpl) Create(ctx context.Context, req reqdto.CreateReservationRequest) (*queries.ReservationView, error) {
	id, err := uc.book(ctx, req)
	if err != nil {
		if reason := rejectReason(err); reason != "" {
			metrics.ObserveReservationRejected(reason)
		}
		return nil, err
	}

	uc.cache.Invalidate(ctx)
	metrics.ObserveReservationCreated()

	// Read-after-write: Get the complete reservation view from read store
	view, err := uc.reservationQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Wrap(err, "load created reservation")
	}
	return view, nil
}

func (uc *reservationCommandsImpl) book(ctx context.Context, req reqdto.CreateReservationRequest) (uuid.UUID, error) {
	params, err := req.ToParams()
	if err != nil {
		return uuid.Nil, err
	}

	// Field and date-order checks come before the property lookup.
	if _, err = reservation.ValidateRequest(uc.factory.Clock.Today(), params); err != nil {
		return uuid.Nil, err
	}

	snap, err := uc.uow.CommandReads().PropertyByID(ctx, req.Property)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.MissingReference("property", req.Property)
		}
		return uuid.Nil, err
	}

	res, err := uc.factory.CreateReservation(snap.Spec(), params)
	if err != nil {
		return uuid.Nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Row lock serializes bookings of the same property.
		locked, err := tx.Reads().PropertyForUpdate(ctx, snap.ID)
		if err != nil {
			return err
		}

		overlapping, err := tx.Reads().HasOverlap(ctx, locked.ID, res.Period())
		if err != nil {
			return err
		}
		if overlapping {
			return reservation.ErrSlotUnavailable
		}

		id, err := tx.Reservations().Create(ctx, tx.DB(), res)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return reservation.ErrSlotUnavailable
			}
			return err
		}

		if _, err = uc.commissions.Generate(ctx, tx, id, res, locked); err != nil {
			return err
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func rejectReason(err error) string {
	switch {
	case errs.Is(err, reservation.ErrSlotUnavailable):
		return "unavailable"
	case errs.Is(err, reservation.ErrCapacityExceeded):
		return "capacity"
	case errs.Is(err, reservation.ErrInvalidDateOrder):
		return "date_order"
	case errs.Is(err, errs.ErrValidation):
		return "validation"
	default:
		return ""
	}
}
