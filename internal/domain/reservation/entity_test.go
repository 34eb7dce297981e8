//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"property-rental/internal/domain/reservation"
	"property-rental/internal/pkg/clock"
	"property-rental/internal/pkg/dateonly"
	"property-rental/internal/pkg/errs"
	"property-rental/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := dateonly.Parse(s)
	require.NoError(t, err)
	return d
}

func newFactory(t *testing.T, today string) *reservation.Factory {
	t.Helper()
	clk := clock.NewMockClock(mustDate(t, today).Add(15 * time.Hour))
	return reservation.NewFactory(clk, reservation.NewNightlyPriceCalculator())
}

func propertySpec(capacity int, price string) reservation.PropertySpec {
	return reservation.PropertySpec{
		ID:            uuid.New(),
		Capacity:      capacity,
		PricePerNight: decimal.RequireFromString(price),
	}
}

func TestFactoryCreateReservation(t *testing.T) {
	t.Run("sixty nights priced per night", func(t *testing.T) {
		f := newFactory(t, "2024-01-01")
		params := builder.NewReservationBuilder().WithDates("2024-01-30", "2024-03-30").BuildParams()

		res, err := f.CreateReservation(propertySpec(4, "20.11"), params)
		require.NoError(t, err)

		assert.Equal(t, 60, res.Period().Nights())
		assert.Equal(t, "1206.60", res.TotalPrice().StringFixed(2))
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
	})

	t.Run("start today is allowed", func(t *testing.T) {
		f := newFactory(t, "2024-01-30")
		params := builder.NewReservationBuilder().WithDates("2024-01-30", "2024-01-31").BuildParams()

		_, err := f.CreateReservation(propertySpec(4, "100"), params)
		assert.NoError(t, err)
	})

	t.Run("both past dates are reported together", func(t *testing.T) {
		f := newFactory(t, "2024-05-01")
		params := builder.NewReservationBuilder().WithDates("2024-01-30", "2024-03-30").BuildParams()

		_, err := f.CreateReservation(propertySpec(4, "100"), params)
		require.Error(t, err)
		fields, ok := errs.AsFieldErrors(err)
		require.True(t, ok)
		assert.Equal(t, []string{reservation.MsgPastStartDate}, fields["start_date"])
		assert.Equal(t, []string{reservation.MsgPastEndDate}, fields["end_date"])
	})

	t.Run("end before start", func(t *testing.T) {
		f := newFactory(t, "2024-01-01")
		params := builder.NewReservationBuilder().WithDates("2024-02-10", "2024-02-05").BuildParams()

		_, err := f.CreateReservation(propertySpec(4, "100"), params)
		assert.True(t, errs.Is(err, reservation.ErrInvalidDateOrder))
		assert.True(t, errs.Is(err, errs.ErrBusinessRule))
	})

	t.Run("end equal to start", func(t *testing.T) {
		f := newFactory(t, "2024-01-01")
		params := builder.NewReservationBuilder().WithDates("2024-02-10", "2024-02-10").BuildParams()

		_, err := f.CreateReservation(propertySpec(4, "100"), params)
		assert.True(t, errs.Is(err, reservation.ErrInvalidDateOrder))
	})

	t.Run("capacity exceeded", func(t *testing.T) {
		f := newFactory(t, "2024-01-01")
		params := builder.NewReservationBuilder().WithDates("2024-02-01", "2024-02-05").WithGuests(5).BuildParams()

		_, err := f.CreateReservation(propertySpec(4, "100"), params)
		assert.True(t, errs.Is(err, reservation.ErrCapacityExceeded))
	})

	t.Run("guests at capacity", func(t *testing.T) {
		f := newFactory(t, "2024-01-01")
		params := builder.NewReservationBuilder().WithDates("2024-02-01", "2024-02-05").WithGuests(4).BuildParams()

		_, err := f.CreateReservation(propertySpec(4, "100"), params)
		assert.NoError(t, err)
	})

	t.Run("client fields are validated", func(t *testing.T) {
		f := newFactory(t, "2024-01-01")
		params := builder.NewReservationBuilder().
			WithDates("2024-02-01", "2024-02-05").
			With(func(b *builder.ReservationBuilder) {
				b.ClientName = ""
				b.ClientEmail = "nope"
				b.GuestsQuantity = 0
			}).
			BuildParams()

		_, err := f.CreateReservation(propertySpec(4, "100"), params)
		fields, ok := errs.AsFieldErrors(err)
		require.True(t, ok)
		assert.Contains(t, fields, "client_name")
		assert.Contains(t, fields, "client_email")
		assert.Contains(t, fields, "guests_quantity")
	})
}

func TestStayPeriodOverlaps(t *testing.T) {
	period := func(start, end string) reservation.StayPeriod {
		p, err := reservation.NewStayPeriod(mustDate(t, start), mustDate(t, end))
		require.NoError(t, err)
		return p
	}
	existing := period("2024-02-10", "2024-02-15")

	tests := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"identical", "2024-02-10", "2024-02-15", true},
		{"contained", "2024-02-11", "2024-02-12", true},
		{"containing", "2024-02-01", "2024-02-28", true},
		{"overlaps start", "2024-02-08", "2024-02-11", true},
		{"overlaps end", "2024-02-14", "2024-02-20", true},
		{"checkout day is free", "2024-02-15", "2024-02-18", false},
		{"ends on check-in day", "2024-02-05", "2024-02-10", false},
		{"disjoint", "2024-03-01", "2024-03-05", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := period(tt.start, tt.end)
			assert.Equal(t, tt.want, candidate.Overlaps(existing))
			assert.Equal(t, tt.want, existing.Overlaps(candidate))
		})
	}
}
