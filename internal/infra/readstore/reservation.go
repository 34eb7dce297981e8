package readstore

import (
	"context"

	"property-rental/internal/domain/reservation"
	"property-rental/internal/infra"
	sqlc "property-rental/internal/infra/sqlc/generated"
	"property-rental/internal/pkg/pgconv"
	"property-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservationDetailByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationDetailByIDRow, error)
	ListReservationDetails(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationDetailsParams) ([]sqlc.ListReservationDetailsRow, error)
	ExistsOverlappingReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsOverlappingReservationParams) (bool, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationDetailByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	view, err := reservationToView(reservationDetail(row))
	if err != nil {
		return nil, infra.WrapRepoErr("invalid reservation row", err)
	}
	return view, nil
}

func (r *ReservationReadStore) List(ctx context.Context, filter queries.ReservationFilter) ([]*queries.ReservationView, error) {
	params := sqlc.ListReservationDetailsParams{
		PropertyID: pgconv.UUIDPtrToPgtype(filter.PropertyID),
		HostID:     pgconv.UUIDPtrToPgtype(filter.HostID),
		OwnerID:    pgconv.UUIDPtrToPgtype(filter.OwnerID),
	}

	rows, err := r.queries.ListReservationDetails(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		view, err := reservationToView(reservationDetail(row))
		if err != nil {
			return nil, infra.WrapRepoErr("invalid reservation row", err)
		}
		result[i] = view
	}
	return result, nil
}

// HasOverlap reports whether a confirmed reservation of the property
// intersects period. Touching stays (one ends the day the other starts) do
// not overlap.
func (r *ReservationReadStore) HasOverlap(ctx context.Context, propertyID uuid.UUID, period reservation.StayPeriod) (bool, error) {
	params := sqlc.ExistsOverlappingReservationParams{
		PropertyID: propertyID,
		StartDate:  pgconv.DateToPgtype(period.Start()),
		EndDate:    pgconv.DateToPgtype(period.End()),
	}
	exists, err := r.queries.ExistsOverlappingReservation(ctx, r.db, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check overlapping reservations", err)
	}
	return exists, nil
}
