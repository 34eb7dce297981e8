package shared

import (
	"property-rental/internal/domain/property"
	"property-rental/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Minimal property data needed on the write side
type PropertySnapshot struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	HostID        uuid.UUID
	Capacity      int
	PricePerNight decimal.Decimal
	Rates         property.CommissionRates
}

func (p *PropertySnapshot) Spec() reservation.PropertySpec {
	return reservation.PropertySpec{
		ID:            p.ID,
		Capacity:      p.Capacity,
		PricePerNight: p.PricePerNight,
	}
}
