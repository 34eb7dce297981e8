package commission

import (
	"time"

	"property-rental/internal/domain/property"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const valueScale = 2

var one = decimal.NewFromInt(1)

// Share is one party's cut of a reservation.
type Share struct {
	Percent decimal.Decimal
	Value   decimal.Decimal
}

type Split struct {
	Seazone Share
	Host    Share
	Owner   Share
}

// NewSplit divides total between platform, host and owner. The platform and
// host values are rounded half-even to cents and the owner receives the
// residual, so the three values always add up to total. The owner's stored
// rate is not consulted.
func NewSplit(total decimal.Decimal, rates property.CommissionRates) Split {
	seazoneValue := total.Mul(rates.Seazone()).RoundBank(valueScale)
	hostValue := total.Mul(rates.Host()).RoundBank(valueScale)

	return Split{
		Seazone: Share{Percent: rates.Seazone(), Value: seazoneValue},
		Host:    Share{Percent: rates.Host(), Value: hostValue},
		Owner: Share{
			Percent: one.Sub(rates.Seazone().Add(rates.Host())),
			Value:   total.Sub(seazoneValue.Add(hostValue)),
		},
	}
}

func (s Split) Total() decimal.Decimal {
	return s.Seazone.Value.Add(s.Host.Value).Add(s.Owner.Value)
}

// Entry is a commission row ready to be persisted.
type Entry struct {
	Type            Type
	ReservationID   uuid.UUID
	BeneficiaryID   uuid.UUID // host or owner; uuid.Nil for the platform
	ReservationDate time.Time
	Share           Share
}

// Entries lays out the split as one row per commission table. The
// reservation date is the reservation's end date.
func (s Split) Entries(reservationID, hostID, ownerID uuid.UUID, reservationDate time.Time) []Entry {
	return []Entry{
		{Type: TypeSeazone, ReservationID: reservationID, ReservationDate: reservationDate, Share: s.Seazone},
		{Type: TypeHost, ReservationID: reservationID, BeneficiaryID: hostID, ReservationDate: reservationDate, Share: s.Host},
		{Type: TypeOwner, ReservationID: reservationID, BeneficiaryID: ownerID, ReservationDate: reservationDate, Share: s.Owner},
	}
}
