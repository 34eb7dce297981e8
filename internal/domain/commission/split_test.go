//go:build unit

package commission_test

import (
	"testing"

	"property-rental/internal/domain/commission"
	"property-rental/internal/domain/property"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rates(t *testing.T, seazone, host, owner string) property.CommissionRates {
	t.Helper()
	r, err := property.NewCommissionRates(
		decimal.RequireFromString(seazone),
		decimal.RequireFromString(host),
		decimal.RequireFromString(owner),
	)
	require.NoError(t, err)
	return r
}

func TestNewSplit(t *testing.T) {
	t.Run("sixty nights at 20.11", func(t *testing.T) {
		total := decimal.RequireFromString("1206.60")

		s := commission.NewSplit(total, rates(t, "0.1", "0.7", "0.2"))

		assert.Equal(t, "120.66", s.Seazone.Value.StringFixed(2))
		assert.Equal(t, "844.62", s.Host.Value.StringFixed(2))
		assert.Equal(t, "241.32", s.Owner.Value.StringFixed(2))
		assert.True(t, s.Owner.Percent.Equal(decimal.RequireFromString("0.2")))
		assert.True(t, s.Total().Equal(total))
	})

	t.Run("values always add up to the total", func(t *testing.T) {
		cases := []struct {
			total                string
			seazone, host, owner string
		}{
			{"0.01", "0.3333", "0.3333", "0.3334"},
			{"100.00", "0", "0", "1"},
			{"100.00", "1", "0", "0"},
			{"99.99", "0.125", "0.125", "0.75"},
			{"12345.67", "0.0001", "0.9998", "0.0001"},
			{"0.00", "0.2", "0.3", "0.5"},
		}
		for _, c := range cases {
			total := decimal.RequireFromString(c.total)
			s := commission.NewSplit(total, rates(t, c.seazone, c.host, c.owner))
			assert.True(t, s.Total().Equal(total), "total %s rates %s/%s/%s", c.total, c.seazone, c.host, c.owner)
			assert.False(t, s.Owner.Value.IsNegative())
		}
	})

	t.Run("half-even rounding", func(t *testing.T) {
		s := commission.NewSplit(decimal.RequireFromString("0.25"), rates(t, "0.5", "0.5", "0"))

		// 0.125 rounds to 0.12 under banker's rounding
		assert.Equal(t, "0.12", s.Seazone.Value.StringFixed(2))
		assert.Equal(t, "0.12", s.Host.Value.StringFixed(2))
		assert.Equal(t, "0.01", s.Owner.Value.StringFixed(2))
	})
}

func TestSplitEntries(t *testing.T) {
	s := commission.NewSplit(decimal.RequireFromString("100.00"), rates(t, "0.1", "0.2", "0.7"))
	resID, hostID, ownerID := uuid.New(), uuid.New(), uuid.New()
	date := mustDate(t, "2024-03-30")

	entries := s.Entries(resID, hostID, ownerID, date)
	require.Len(t, entries, 3)

	assert.Equal(t, commission.TypeSeazone, entries[0].Type)
	assert.Equal(t, uuid.Nil, entries[0].BeneficiaryID)
	assert.Equal(t, commission.TypeHost, entries[1].Type)
	assert.Equal(t, hostID, entries[1].BeneficiaryID)
	assert.Equal(t, commission.TypeOwner, entries[2].Type)
	assert.Equal(t, ownerID, entries[2].BeneficiaryID)
	for _, e := range entries {
		assert.Equal(t, resID, e.ReservationID)
		assert.Equal(t, date, e.ReservationDate)
	}
}
