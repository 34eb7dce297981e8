package readstore

import (
	sqlc "property-rental/internal/infra/sqlc/generated"
	"property-rental/internal/pkg/pgconv"
	"property-rental/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

func ownerToView(o sqlc.Owner) *queries.ContactView {
	return &queries.ContactView{
		ID:        o.ID,
		Name:      o.Name,
		Email:     o.Email,
		Phone:     o.Phone,
		CreatedAt: pgconv.TimeFromPgtype(o.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(o.UpdatedAt),
	}
}

func hostToView(h sqlc.Host) *queries.ContactView {
	return &queries.ContactView{
		ID:        h.ID,
		Name:      h.Name,
		Email:     h.Email,
		Phone:     h.Phone,
		CreatedAt: pgconv.TimeFromPgtype(h.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(h.UpdatedAt),
	}
}

func propertyToView(p sqlc.Property) (*queries.PropertyView, error) {
	price, err := pgconv.DecimalFromNumeric(p.PricePerNight)
	if err != nil {
		return nil, err
	}
	seazone, err := pgconv.DecimalFromNumeric(p.SeazoneRate)
	if err != nil {
		return nil, err
	}
	host, err := pgconv.DecimalFromNumeric(p.HostRate)
	if err != nil {
		return nil, err
	}
	owner, err := pgconv.DecimalFromNumeric(p.OwnerRate)
	if err != nil {
		return nil, err
	}

	return &queries.PropertyView{
		ID:                  p.ID,
		Title:               p.Title,
		AddressStreet:       p.AddressStreet,
		AddressNumber:       p.AddressNumber,
		AddressNeighborhood: p.AddressNeighborhood,
		AddressCity:         p.AddressCity,
		Country:             p.Country,
		Rooms:               p.Rooms,
		Capacity:            p.Capacity,
		PricePerNight:       price,
		OwnerID:             p.OwnerID,
		HostID:              p.HostID,
		SeazoneRate:         seazone,
		HostRate:            host,
		OwnerRate:           owner,
		CreatedAt:           pgconv.TimeFromPgtype(p.CreatedAt),
		UpdatedAt:           pgconv.TimeFromPgtype(p.UpdatedAt),
	}, nil
}

// reservationDetail is the column set shared by the single and list detail
// queries.
type reservationDetail struct {
	Reservation       sqlc.Reservation
	Property          sqlc.Property
	Owner             sqlc.Owner
	Host              sqlc.Host
	SeazoneCommission pgtype.Numeric
	HostCommission    pgtype.Numeric
	OwnerCommission   pgtype.Numeric
}

func reservationToView(d reservationDetail) (*queries.ReservationView, error) {
	prop, err := propertyToView(d.Property)
	if err != nil {
		return nil, err
	}
	total, err := pgconv.DecimalFromNumeric(d.Reservation.TotalPrice)
	if err != nil {
		return nil, err
	}
	seazone, err := pgconv.DecimalPtrFromNumeric(d.SeazoneCommission)
	if err != nil {
		return nil, err
	}
	host, err := pgconv.DecimalPtrFromNumeric(d.HostCommission)
	if err != nil {
		return nil, err
	}
	owner, err := pgconv.DecimalPtrFromNumeric(d.OwnerCommission)
	if err != nil {
		return nil, err
	}

	r := d.Reservation
	return &queries.ReservationView{
		ID:                r.ID,
		Property:          *prop,
		Owner:             *ownerToView(d.Owner),
		Host:              *hostToView(d.Host),
		StartDate:         pgconv.DateFromPgtype(r.StartDate),
		EndDate:           pgconv.DateFromPgtype(r.EndDate),
		ClientName:        r.ClientName,
		ClientEmail:       r.ClientEmail,
		GuestsQuantity:    r.GuestsQuantity,
		TotalPrice:        total,
		Status:            r.Status,
		SeazoneCommission: seazone,
		HostCommission:    host,
		OwnerCommission:   owner,
		CreatedAt:         pgconv.TimeFromPgtype(r.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(r.UpdatedAt),
	}, nil
}
