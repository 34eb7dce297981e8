//go:build unit || e2e

package builder

import (
	"time"

	"property-rental/internal/domain/reservation"
	reqdto "property-rental/internal/handler/dto/request"
	"property-rental/internal/pkg/dateonly"
	"property-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReservationBuilder struct {
	ID             uuid.UUID
	PropertyID     uuid.UUID
	StartDate      string
	EndDate        string
	ClientName     string
	ClientEmail    string
	GuestsQuantity int
	Status         reservation.Status
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:             uuid.New(),
		PropertyID:     uuid.New(),
		StartDate:      "2024-01-30",
		EndDate:        "2024-03-30",
		ClientName:     "Maria Silva",
		ClientEmail:    "maria@example.com",
		GuestsQuantity: 2,
		Status:         reservation.StatusConfirmed,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithDates(start, end string) *ReservationBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *ReservationBuilder) WithGuests(n int) *ReservationBuilder {
	b.GuestsQuantity = n
	return b
}

func (b *ReservationBuilder) WithProperty(id uuid.UUID) *ReservationBuilder {
	b.PropertyID = id
	return b
}

// Build methods
func (b *ReservationBuilder) BuildParams() reservation.NewReservationParams {
	return reservation.NewReservationParams{
		StartDate:      mustDate(b.StartDate),
		EndDate:        mustDate(b.EndDate),
		ClientName:     b.ClientName,
		ClientEmail:    b.ClientEmail,
		GuestsQuantity: b.GuestsQuantity,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		Property:       b.PropertyID,
		ClientName:     b.ClientName,
		ClientEmail:    b.ClientEmail,
		StartDate:      b.StartDate,
		EndDate:        b.EndDate,
		GuestsQuantity: b.GuestsQuantity,
	}
}

// BuildView prices the stay with prop and fills the three commission values
// the same way the booking transaction does.
func (b *ReservationBuilder) BuildView(prop *PropertyBuilder) *queries.ReservationView {
	start, end := mustDate(b.StartDate), mustDate(b.EndDate)
	nights := dateonly.DaysBetween(start, end)
	total := prop.PricePerNight.Mul(decimal.NewFromInt(int64(nights))).Round(2)
	seazone := total.Mul(prop.SeazoneRate).RoundBank(2)
	host := total.Mul(prop.HostRate).RoundBank(2)
	owner := total.Sub(seazone).Sub(host)

	propView := prop.BuildView()
	return &queries.ReservationView{
		ID:                b.ID,
		Property:          *propView,
		Owner:             *NewContactBuilder().WithID(prop.OwnerID).BuildView(),
		Host:              *NewContactBuilder().WithID(prop.HostID).BuildView(),
		StartDate:         start,
		EndDate:           end,
		ClientName:        b.ClientName,
		ClientEmail:       b.ClientEmail,
		GuestsQuantity:    int32(b.GuestsQuantity), // #nosec G115 -- test data
		TotalPrice:        total,
		Status:            b.Status.String(),
		SeazoneCommission: &seazone,
		HostCommission:    &host,
		OwnerCommission:   &owner,
		CreatedAt:         prop.CreatedAt,
		UpdatedAt:         prop.CreatedAt,
	}
}

func mustDate(s string) time.Time {
	t, err := dateonly.Parse(s)
	if err != nil {
		panic("builder: bad date " + s)
	}
	return t
}
