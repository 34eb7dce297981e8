package request

import (
	"property-rental/internal/domain/reservation"
	"property-rental/internal/pkg/dateonly"
	"property-rental/internal/pkg/errs"
	"property-rental/internal/pkg/patch"
	"property-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	Property       uuid.UUID `json:"property" binding:"required"`
	ClientName     string    `json:"client_name" binding:"required,max=100"`
	ClientEmail    string    `json:"client_email" binding:"required,email"`
	StartDate      string    `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate        string    `json:"end_date" binding:"required,datetime=2006-01-02"`
	GuestsQuantity int       `json:"guests_quantity" binding:"required,gt=0"`
}

func (r CreateReservationRequest) ToParams() (reservation.NewReservationParams, error) {
	fe := errs.NewFieldErrors()
	start, err := dateonly.Parse(r.StartDate)
	if err != nil {
		fe.Add("start_date", dateonly.ErrInvalidDate.Error())
	}
	end, err := dateonly.Parse(r.EndDate)
	if err != nil {
		fe.Add("end_date", dateonly.ErrInvalidDate.Error())
	}
	if err := fe.Err(); err != nil {
		return reservation.NewReservationParams{}, err
	}

	return reservation.NewReservationParams{
		StartDate:      start,
		EndDate:        end,
		ClientName:     r.ClientName,
		ClientEmail:    r.ClientEmail,
		GuestsQuantity: r.GuestsQuantity,
	}, nil
}

type AvailabilityQuery struct {
	StartDate      string `form:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate        string `form:"end_date" binding:"required,datetime=2006-01-02"`
	GuestsQuantity int    `form:"guests_quantity" binding:"required"`
}

func (q AvailabilityQuery) ToRequest(propertyID uuid.UUID) (queries.AvailabilityRequest, error) {
	start, err := dateonly.Parse(q.StartDate)
	if err != nil {
		return queries.AvailabilityRequest{}, errs.FieldError("start_date", dateonly.ErrInvalidDate.Error())
	}
	end, err := dateonly.Parse(q.EndDate)
	if err != nil {
		return queries.AvailabilityRequest{}, errs.FieldError("end_date", dateonly.ErrInvalidDate.Error())
	}
	return queries.AvailabilityRequest{
		PropertyID:     propertyID,
		StartDate:      start,
		EndDate:        end,
		GuestsQuantity: q.GuestsQuantity,
	}, nil
}

type ListReservationsQuery struct {
	PropertyID *string `form:"property_id" binding:"omitempty,uuid"`
	HostID     *string `form:"host_id" binding:"omitempty,uuid"`
	OwnerID    *string `form:"owner_id" binding:"omitempty,uuid"`
}

func (q ListReservationsQuery) ToFilter() (queries.ReservationFilter, error) {
	fe := errs.NewFieldErrors()
	f := queries.ReservationFilter{
		PropertyID: parseUUIDField(fe, "property_id", q.PropertyID),
		HostID:     parseUUIDField(fe, "host_id", q.HostID),
		OwnerID:    parseUUIDField(fe, "owner_id", q.OwnerID),
	}
	if err := fe.Err(); err != nil {
		return queries.ReservationFilter{}, err
	}
	return f, nil
}

func parseUUIDField(fe *errs.FieldErrors, field string, s *string) *uuid.UUID {
	v := patch.NonBlank(s)
	if v == nil {
		return nil
	}
	id, err := uuid.Parse(*v)
	if err != nil {
		fe.Add(field, "Must be a valid UUID.")
		return nil
	}
	return &id
}
