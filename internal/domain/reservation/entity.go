package reservation

import (
	"time"

	"property-rental/internal/domain/party"
	"property-rental/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PropertySpec is the slice of a property that booking rules depend on.
type PropertySpec struct {
	ID            uuid.UUID
	Capacity      int
	PricePerNight decimal.Decimal
}

type NewReservationParams struct {
	StartDate      time.Time
	EndDate        time.Time
	ClientName     string
	ClientEmail    string
	GuestsQuantity int
}

type Reservation struct {
	id             uuid.UUID
	propertyID     uuid.UUID
	period         StayPeriod
	clientName     party.Name
	clientEmail    party.Email
	guestsQuantity int
	totalPrice     decimal.Decimal
	status         Status
	createdAt      time.Time
	updatedAt      time.Time
}

// ValidateRequest runs the checks that need no stored data. Field-level
// problems are collected and returned together; the date order rule is only
// evaluated once every field is valid.
func ValidateRequest(today time.Time, p NewReservationParams) (StayPeriod, error) {
	fe := errs.NewFieldErrors()

	if p.StartDate.Before(today) {
		fe.Add("start_date", MsgPastStartDate)
	}
	if p.EndDate.Before(today) {
		fe.Add("end_date", MsgPastEndDate)
	}
	if _, err := party.NewName(p.ClientName); err != nil {
		fe.Add("client_name", err.Error())
	}
	if _, err := party.NewEmail(p.ClientEmail); err != nil {
		fe.Add("client_email", err.Error())
	}
	if p.GuestsQuantity < 1 {
		fe.Add("guests_quantity", MsgInvalidGuests)
	}
	if err := fe.Err(); err != nil {
		return StayPeriod{}, err
	}

	return NewStayPeriod(p.StartDate, p.EndDate)
}

func ReconstructReservation(
	id, propertyID uuid.UUID,
	period StayPeriod,
	clientName, clientEmail string,
	guestsQuantity int,
	totalPrice decimal.Decimal,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	name, _ := party.NewName(clientName)
	email, _ := party.NewEmail(clientEmail)
	return &Reservation{
		id:             id,
		propertyID:     propertyID,
		period:         period,
		clientName:     name,
		clientEmail:    email,
		guestsQuantity: guestsQuantity,
		totalPrice:     totalPrice,
		status:         status,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID               { return r.id }
func (r *Reservation) PropertyID() uuid.UUID       { return r.propertyID }
func (r *Reservation) Period() StayPeriod          { return r.period }
func (r *Reservation) ClientName() string          { return r.clientName.String() }
func (r *Reservation) ClientEmail() string         { return r.clientEmail.Value() }
func (r *Reservation) GuestsQuantity() int         { return r.guestsQuantity }
func (r *Reservation) TotalPrice() decimal.Decimal { return r.totalPrice }
func (r *Reservation) Status() Status              { return r.status }
func (r *Reservation) CreatedAt() time.Time        { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time        { return r.updatedAt }
