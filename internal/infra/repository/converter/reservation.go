package converter

import (
	"property-rental/internal/domain/reservation"
	sqlc "property-rental/internal/infra/sqlc/generated"
	"property-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	period := res.Period()

	return sqlc.CreateReservationParams{
		PropertyID:     res.PropertyID(),
		StartDate:      pgconv.DateToPgtype(period.Start()),
		EndDate:        pgconv.DateToPgtype(period.End()),
		ClientName:     res.ClientName(),
		ClientEmail:    res.ClientEmail(),
		GuestsQuantity: int32(res.GuestsQuantity()), // #nosec G115 -- at most the property capacity, itself bounded by property.MaxCount
		TotalPrice:     pgconv.NumericFromDecimal(res.TotalPrice()),
		Status:         res.Status().String(),
	}
}

// StayToInfra builds the overlap probe for a property and stay period.
func StayToInfra(propertyID uuid.UUID, period reservation.StayPeriod) sqlc.ExistsOverlappingReservationParams {
	return sqlc.ExistsOverlappingReservationParams{
		PropertyID: propertyID,
		StartDate:  pgconv.DateToPgtype(period.Start()),
		EndDate:    pgconv.DateToPgtype(period.End()),
	}
}
