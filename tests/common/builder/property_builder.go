//go:build unit || e2e

package builder

import (
	"time"

	"property-rental/internal/domain/property"
	reqdto "property-rental/internal/handler/dto/request"
	sqlc "property-rental/internal/infra/sqlc/generated"
	"property-rental/internal/pkg/pgconv"
	"property-rental/internal/usecase/queries"
	"property-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type PropertyBuilder struct {
	ID            uuid.UUID
	Title         string
	Street        string
	Number        string
	Neighborhood  string
	City          string
	Country       string
	Rooms         int
	Capacity      int
	PricePerNight decimal.Decimal
	OwnerID       uuid.UUID
	HostID        uuid.UUID
	SeazoneRate   decimal.Decimal
	HostRate      decimal.Decimal
	OwnerRate     decimal.Decimal
	CreatedAt     time.Time
}

// NewPropertyBuilder returns the reference property used across the suite:
// 20.11 per night for up to 4 guests, split 0.1 / 0.7 / 0.2.
func NewPropertyBuilder() *PropertyBuilder {
	return &PropertyBuilder{
		ID:            uuid.New(),
		Title:         "Beach House",
		Street:        "Rua das Flores",
		Number:        "123",
		Neighborhood:  "Copacabana",
		City:          "Rio de Janeiro",
		Country:       "BRA",
		Rooms:         2,
		Capacity:      4,
		PricePerNight: decimal.RequireFromString("20.11"),
		OwnerID:       uuid.New(),
		HostID:        uuid.New(),
		SeazoneRate:   decimal.RequireFromString("0.1"),
		HostRate:      decimal.RequireFromString("0.7"),
		OwnerRate:     decimal.RequireFromString("0.2"),
		CreatedAt:     time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *PropertyBuilder) With(mutate func(*PropertyBuilder)) *PropertyBuilder {
	mutate(b)
	return b
}

func (b *PropertyBuilder) WithRates(seazone, host, owner string) *PropertyBuilder {
	b.SeazoneRate = decimal.RequireFromString(seazone)
	b.HostRate = decimal.RequireFromString(host)
	b.OwnerRate = decimal.RequireFromString(owner)
	return b
}

func (b *PropertyBuilder) WithPrice(price string) *PropertyBuilder {
	b.PricePerNight = decimal.RequireFromString(price)
	return b
}

func (b *PropertyBuilder) WithParties(ownerID, hostID uuid.UUID) *PropertyBuilder {
	b.OwnerID = ownerID
	b.HostID = hostID
	return b
}

// Build methods
func (b *PropertyBuilder) BuildParams() property.NewPropertyParams {
	return property.NewPropertyParams{
		Title: b.Title,
		Address: property.Address{
			Street:       b.Street,
			Number:       b.Number,
			Neighborhood: b.Neighborhood,
			City:         b.City,
			Country:      b.Country,
		},
		Rooms:         b.Rooms,
		Capacity:      b.Capacity,
		PricePerNight: b.PricePerNight,
		OwnerID:       b.OwnerID,
		HostID:        b.HostID,
		SeazoneRate:   b.SeazoneRate,
		HostRate:      b.HostRate,
		OwnerRate:     b.OwnerRate,
	}
}

func (b *PropertyBuilder) BuildDomain() (*property.Property, error) {
	return property.NewProperty(b.BuildParams())
}

func (b *PropertyBuilder) BuildCreateRequestDTO() reqdto.CreatePropertyRequest {
	rooms := b.Rooms
	price := b.PricePerNight
	seazone, host, owner := b.SeazoneRate, b.HostRate, b.OwnerRate
	return reqdto.CreatePropertyRequest{
		Title:               b.Title,
		AddressStreet:       b.Street,
		AddressNumber:       b.Number,
		AddressNeighborhood: b.Neighborhood,
		AddressCity:         b.City,
		Country:             b.Country,
		Rooms:               &rooms,
		Capacity:            b.Capacity,
		PricePerNight:       &price,
		Owner:               b.OwnerID,
		Host:                b.HostID,
		SeazoneRate:         &seazone,
		HostRate:            &host,
		OwnerRate:           &owner,
	}
}

func (b *PropertyBuilder) BuildSnapshot() *shared.PropertySnapshot {
	return &shared.PropertySnapshot{
		ID:            b.ID,
		OwnerID:       b.OwnerID,
		HostID:        b.HostID,
		Capacity:      b.Capacity,
		PricePerNight: b.PricePerNight,
		Rates:         property.ReconstructCommissionRates(b.SeazoneRate, b.HostRate, b.OwnerRate),
	}
}

func (b *PropertyBuilder) BuildView() *queries.PropertyView {
	return &queries.PropertyView{
		ID:                  b.ID,
		Title:               b.Title,
		AddressStreet:       b.Street,
		AddressNumber:       b.Number,
		AddressNeighborhood: b.Neighborhood,
		AddressCity:         b.City,
		Country:             b.Country,
		Rooms:               int32(b.Rooms),    // #nosec G115 -- test data
		Capacity:            int32(b.Capacity), // #nosec G115 -- test data
		PricePerNight:       b.PricePerNight,
		OwnerID:             b.OwnerID,
		HostID:              b.HostID,
		SeazoneRate:         b.SeazoneRate,
		HostRate:            b.HostRate,
		OwnerRate:           b.OwnerRate,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.CreatedAt,
	}
}

func (b *PropertyBuilder) BuildInfra() sqlc.Property {
	return sqlc.Property{
		ID:                  b.ID,
		Title:               b.Title,
		AddressStreet:       b.Street,
		AddressNumber:       b.Number,
		AddressNeighborhood: b.Neighborhood,
		AddressCity:         b.City,
		Country:             b.Country,
		Rooms:               int32(b.Rooms),    // #nosec G115 -- test data
		Capacity:            int32(b.Capacity), // #nosec G115 -- test data
		PricePerNight:       pgconv.NumericFromDecimal(b.PricePerNight),
		OwnerID:             b.OwnerID,
		HostID:              b.HostID,
		SeazoneRate:         pgconv.NumericFromDecimal(b.SeazoneRate),
		HostRate:            pgconv.NumericFromDecimal(b.HostRate),
		OwnerRate:           pgconv.NumericFromDecimal(b.OwnerRate),
		CreatedAt:           pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:           pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}
