package converter

import (
	"property-rental/internal/domain/property"
	sqlc "property-rental/internal/infra/sqlc/generated"
	"property-rental/internal/pkg/pgconv"
)

func PropertyToInfra(p *property.Property) sqlc.CreatePropertyParams {
	addr := p.Address()
	rates := p.Rates()

	return sqlc.CreatePropertyParams{
		Title:               p.Title(),
		AddressStreet:       addr.Street,
		AddressNumber:       addr.Number,
		AddressNeighborhood: addr.Neighborhood,
		AddressCity:         addr.City,
		Country:             addr.Country,
		Rooms:               int32(p.Rooms()),    // #nosec G115 -- NewProperty bounds it by property.MaxCount
		Capacity:            int32(p.Capacity()), // #nosec G115 -- NewProperty bounds it by property.MaxCount
		PricePerNight:       pgconv.NumericFromDecimal(p.PricePerNight()),
		OwnerID:             p.OwnerID(),
		HostID:              p.HostID(),
		SeazoneRate:         pgconv.NumericFromDecimal(rates.Seazone()),
		HostRate:            pgconv.NumericFromDecimal(rates.Host()),
		OwnerRate:           pgconv.NumericFromDecimal(rates.Owner()),
	}
}

// PropertyFromInfra rebuilds the aggregate from a stored row.
func PropertyFromInfra(row sqlc.Property) (*property.Property, error) {
	price, err := pgconv.DecimalFromNumeric(row.PricePerNight)
	if err != nil {
		return nil, err
	}
	seazone, err := pgconv.DecimalFromNumeric(row.SeazoneRate)
	if err != nil {
		return nil, err
	}
	host, err := pgconv.DecimalFromNumeric(row.HostRate)
	if err != nil {
		return nil, err
	}
	owner, err := pgconv.DecimalFromNumeric(row.OwnerRate)
	if err != nil {
		return nil, err
	}

	return property.Reconstruct(
		row.ID,
		row.Title,
		property.Address{
			Street:       row.AddressStreet,
			Number:       row.AddressNumber,
			Neighborhood: row.AddressNeighborhood,
			City:         row.AddressCity,
			Country:      row.Country,
		},
		int(row.Rooms),
		int(row.Capacity),
		price,
		row.OwnerID,
		row.HostID,
		property.ReconstructCommissionRates(seazone, host, owner),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
