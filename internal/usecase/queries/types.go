package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContactView represents read-optimized owner or host data
type ContactView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PropertyView represents read-optimized property data
type PropertyView struct {
	ID                  uuid.UUID       `json:"id"`
	Title               string          `json:"title"`
	AddressStreet       string          `json:"address_street"`
	AddressNumber       string          `json:"address_number"`
	AddressNeighborhood string          `json:"address_neighborhood"`
	AddressCity         string          `json:"address_city"`
	Country             string          `json:"country"`
	Rooms               int32           `json:"rooms"`
	Capacity            int32           `json:"capacity"`
	PricePerNight       decimal.Decimal `json:"price_per_night"`
	OwnerID             uuid.UUID       `json:"owner_id"`
	HostID              uuid.UUID       `json:"host_id"`
	SeazoneRate         decimal.Decimal `json:"seazone_rate"`
	HostRate            decimal.Decimal `json:"host_rate"`
	OwnerRate           decimal.Decimal `json:"owner_rate"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// ReservationView is a reservation with its property, the property's owner
// and host, and the commission values generated for it.
type ReservationView struct {
	ID                uuid.UUID        `json:"id"`
	Property          PropertyView     `json:"property"`
	Owner             ContactView      `json:"owner"`
	Host              ContactView      `json:"host"`
	StartDate         time.Time        `json:"start_date"`
	EndDate           time.Time        `json:"end_date"`
	ClientName        string           `json:"client_name"`
	ClientEmail       string           `json:"client_email"`
	GuestsQuantity    int32            `json:"guests_quantity"`
	TotalPrice        decimal.Decimal  `json:"total_price"`
	Status            string           `json:"status"`
	SeazoneCommission *decimal.Decimal `json:"seazone_commission"`
	HostCommission    *decimal.Decimal `json:"host_commission"`
	OwnerCommission   *decimal.Decimal `json:"owner_commission"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// PropertyStatement is one property's share of a financial statement
type PropertyStatement struct {
	PropertyID        uuid.UUID       `json:"property_id"`
	TotalCommission   decimal.Decimal `json:"total_commission"`
	TotalReservations int64           `json:"total_reservations"`
}

// FinancialStatement aggregates one commission table
type FinancialStatement struct {
	TotalCommission     decimal.Decimal     `json:"total_commission"`
	TotalReservations   int64               `json:"total_reservations"`
	PropertiesStatement []PropertyStatement `json:"properties_statement"`
}

type PropertyFilter struct {
	Neighborhood *string
	City         *string
	MinCapacity  *int32
	MaxPrice     *decimal.Decimal
}

type ReservationFilter struct {
	PropertyID *uuid.UUID
	HostID     *uuid.UUID
	OwnerID    *uuid.UUID
}
