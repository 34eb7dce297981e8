package response

import (
	"time"

	"property-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PropertySummary is the property as nested inside a reservation.
type PropertySummary struct {
	ID                  uuid.UUID       `json:"id"`
	Title               string          `json:"title"`
	AddressStreet       string          `json:"address_street"`
	AddressNumber       string          `json:"address_number"`
	AddressNeighborhood string          `json:"address_neighborhood"`
	AddressCity         string          `json:"address_city"`
	Country             string          `json:"country"`
	Rooms               int32           `json:"rooms"`
	Capacity            int32           `json:"capacity"`
	PricePerNight       Money           `json:"price_per_night"`
	SeazoneRate         decimal.Decimal `json:"seazone_rate"`
	HostRate            decimal.Decimal `json:"host_rate"`
	OwnerRate           decimal.Decimal `json:"owner_rate"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

type PropertyResponse struct {
	PropertySummary
	OwnerID uuid.UUID `json:"owner"`
	HostID  uuid.UUID `json:"host"`
}

func FromPropertyView(v *queries.PropertyView) *PropertyResponse {
	out := &PropertyResponse{OwnerID: v.OwnerID, HostID: v.HostID}
	copyFrom(&out.PropertySummary, v)
	return out
}

func FromPropertyList(items []*queries.PropertyView) []*PropertyResponse {
	res := make([]*PropertyResponse, len(items))
	for i, it := range items {
		res[i] = FromPropertyView(it)
	}
	return res
}

type AvailabilityResponse struct {
	Message string `json:"message"`
}

func Available() *AvailabilityResponse {
	return &AvailabilityResponse{Message: "Available for the selected dates."}
}
