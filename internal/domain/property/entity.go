package property

import (
	"strings"
	"time"

	"property-rental/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrPropertyNotFound = errs.Mark(errs.New("property not found"), errs.ErrNotFound)

type Property struct {
	id            uuid.UUID
	title         string
	address       Address
	rooms         int
	capacity      int
	pricePerNight decimal.Decimal
	ownerID       uuid.UUID
	hostID        uuid.UUID
	rates         CommissionRates
	createdAt     time.Time
	updatedAt     time.Time
}

type NewPropertyParams struct {
	Title         string
	Address       Address
	Rooms         int
	Capacity      int
	PricePerNight decimal.Decimal
	OwnerID       uuid.UUID
	HostID        uuid.UUID
	SeazoneRate   decimal.Decimal
	HostRate      decimal.Decimal
	OwnerRate     decimal.Decimal
}

// NewProperty validates a registration. Field problems are reported together
// before the rate-sum rule is evaluated.
func NewProperty(p NewPropertyParams) (*Property, error) {
	fe := errs.NewFieldErrors()

	title := strings.TrimSpace(p.Title)
	checkText(fe, "title", title, MaxTitleLength)

	addr := p.Address.normalized()
	addr.validate(fe)

	if p.Rooms < 0 {
		fe.Add("rooms", "Ensure this value is greater than or equal to 0.")
	}
	if p.Rooms > MaxCount {
		fe.Add("rooms", msgCountTooLarge)
	}
	if p.Capacity <= 0 {
		fe.Add("capacity", "Ensure this value is greater than 0.")
	}
	if p.Capacity > MaxCount {
		fe.Add("capacity", msgCountTooLarge)
	}
	checkPrice(fe, "price_per_night", p.PricePerNight)

	if p.OwnerID == uuid.Nil {
		fe.Add("owner", "This field is required.")
	}
	if p.HostID == uuid.Nil {
		fe.Add("host", "This field is required.")
	}

	if err := fe.Err(); err != nil {
		return nil, err
	}

	rates, err := NewCommissionRates(p.SeazoneRate, p.HostRate, p.OwnerRate)
	if err != nil {
		return nil, err
	}

	return &Property{
		title:         title,
		address:       addr,
		rooms:         p.Rooms,
		capacity:      p.Capacity,
		pricePerNight: p.PricePerNight,
		ownerID:       p.OwnerID,
		hostID:        p.HostID,
		rates:         rates,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	title string,
	address Address,
	rooms, capacity int,
	pricePerNight decimal.Decimal,
	ownerID, hostID uuid.UUID,
	rates CommissionRates,
	createdAt, updatedAt time.Time,
) *Property {
	return &Property{
		id:            id,
		title:         title,
		address:       address,
		rooms:         rooms,
		capacity:      capacity,
		pricePerNight: pricePerNight,
		ownerID:       ownerID,
		hostID:        hostID,
		rates:         rates,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (p *Property) Accommodates(guests int) bool {
	return guests <= p.capacity
}

func (p *Property) ID() uuid.UUID                  { return p.id }
func (p *Property) Title() string                  { return p.title }
func (p *Property) Address() Address               { return p.address }
func (p *Property) Rooms() int                     { return p.rooms }
func (p *Property) Capacity() int                  { return p.capacity }
func (p *Property) PricePerNight() decimal.Decimal { return p.pricePerNight }
func (p *Property) OwnerID() uuid.UUID             { return p.ownerID }
func (p *Property) HostID() uuid.UUID              { return p.hostID }
func (p *Property) Rates() CommissionRates         { return p.rates }
func (p *Property) CreatedAt() time.Time           { return p.createdAt }
func (p *Property) UpdatedAt() time.Time           { return p.updatedAt }
