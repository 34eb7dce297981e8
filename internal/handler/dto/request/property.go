package request

import (
	"property-rental/internal/domain/property"
	"property-rental/internal/pkg/errs"
	"property-rental/internal/pkg/patch"
	"property-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePropertyRequest struct {
	Title               string           `json:"title" binding:"required,max=200"`
	AddressStreet       string           `json:"address_street" binding:"required,max=200"`
	AddressNumber       string           `json:"address_number" binding:"required,max=200"`
	AddressNeighborhood string           `json:"address_neighborhood" binding:"required,max=200"`
	AddressCity         string           `json:"address_city" binding:"required,max=200"`
	Country             string           `json:"country" binding:"required,max=3"`
	Rooms               *int             `json:"rooms" binding:"required,gte=0,lte=2147483647"`
	Capacity            int              `json:"capacity" binding:"required,gt=0,lte=2147483647"`
	PricePerNight       *decimal.Decimal `json:"price_per_night" binding:"required,gte=0"`
	Owner               uuid.UUID        `json:"owner" binding:"required"`
	Host                uuid.UUID        `json:"host" binding:"required"`
	SeazoneRate         *decimal.Decimal `json:"seazone_rate" binding:"required,gte=0,lte=1"`
	HostRate            *decimal.Decimal `json:"host_rate" binding:"required,gte=0,lte=1"`
	OwnerRate           *decimal.Decimal `json:"owner_rate" binding:"required,gte=0,lte=1"`
}

func (r CreatePropertyRequest) ToParams() property.NewPropertyParams {
	return property.NewPropertyParams{
		Title: r.Title,
		Address: property.Address{
			Street:       r.AddressStreet,
			Number:       r.AddressNumber,
			Neighborhood: r.AddressNeighborhood,
			City:         r.AddressCity,
			Country:      r.Country,
		},
		Rooms:         patch.Coalesce(r.Rooms, 0),
		Capacity:      r.Capacity,
		PricePerNight: patch.Coalesce(r.PricePerNight, decimal.Zero),
		OwnerID:       r.Owner,
		HostID:        r.Host,
		SeazoneRate:   patch.Coalesce(r.SeazoneRate, decimal.Zero),
		HostRate:      patch.Coalesce(r.HostRate, decimal.Zero),
		OwnerRate:     patch.Coalesce(r.OwnerRate, decimal.Zero),
	}
}

type ListPropertiesQuery struct {
	AddressNeighborhood *string `form:"address_neighborhood"`
	AddressCity         *string `form:"address_city"`
	Capacity            *int32  `form:"capacity" binding:"omitempty,gte=0"`
	PricePerNight       *string `form:"price_per_night"`
}

func (q ListPropertiesQuery) ToFilter() (queries.PropertyFilter, error) {
	f := queries.PropertyFilter{
		Neighborhood: patch.NonBlank(q.AddressNeighborhood),
		City:         patch.NonBlank(q.AddressCity),
		MinCapacity:  q.Capacity,
	}
	if p := patch.NonBlank(q.PricePerNight); p != nil {
		d, err := decimal.NewFromString(*p)
		if err != nil {
			return queries.PropertyFilter{}, errs.FieldError("price_per_night", "Enter a number.")
		}
		f.MaxPrice = &d
	}
	return f, nil
}
