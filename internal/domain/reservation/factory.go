package reservation

import (
	"property-rental/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

// CreateReservation builds a confirmed reservation for prop. Overlap with
// stored reservations is checked by the caller under the property lock.
func (f *Factory) CreateReservation(prop PropertySpec, p NewReservationParams) (*Reservation, error) {
	period, err := ValidateRequest(f.Clock.Today(), p)
	if err != nil {
		return nil, err
	}

	if p.GuestsQuantity > prop.Capacity {
		return nil, ErrCapacityExceeded
	}

	return ReconstructReservation(
		uuid.Nil,
		prop.ID,
		period,
		p.ClientName,
		p.ClientEmail,
		p.GuestsQuantity,
		f.PriceCalculator.TotalPrice(prop.PricePerNight, period),
		StatusConfirmed,
		f.Clock.Now(),
		f.Clock.Now(),
	), nil
}
