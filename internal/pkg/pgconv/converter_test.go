//go:build unit

package pgconv_test

import (
	"math/big"
	"testing"
	"time"

	"property-rental/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalRoundTrip(t *testing.T) {
	tests := []string{"0", "20.11", "1206.60", "0.1000", "-3.5"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			d := decimal.RequireFromString(in)
			got, err := pgconv.DecimalFromNumeric(pgconv.NumericFromDecimal(d))
			require.NoError(t, err)
			assert.True(t, d.Equal(got), "want %s got %s", d, got)
		})
	}
}

func TestDecimalFromNumeric(t *testing.T) {
	t.Run("null is zero", func(t *testing.T) {
		got, err := pgconv.DecimalFromNumeric(pgtype.Numeric{})
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	})

	t.Run("NaN is rejected", func(t *testing.T) {
		_, err := pgconv.DecimalFromNumeric(pgtype.Numeric{NaN: true, Valid: true})
		assert.ErrorIs(t, err, pgconv.ErrInvalidNumericValue)
	})

	t.Run("scaled integer", func(t *testing.T) {
		got, err := pgconv.DecimalFromNumeric(pgtype.Numeric{Int: big.NewInt(12066), Exp: -1, Valid: true})
		require.NoError(t, err)
		assert.Equal(t, "1206.6", got.String())
	})

	t.Run("nullable pointer", func(t *testing.T) {
		got, err := pgconv.DecimalPtrFromNumeric(pgtype.Numeric{})
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestDateConversion(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	in := time.Date(2024, 1, 30, 23, 15, 0, 0, loc)

	pd := pgconv.DateToPgtype(in)
	require.True(t, pd.Valid)
	assert.Equal(t, time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC), pgconv.DateFromPgtype(pd))

	assert.False(t, pgconv.DatePtrToPgtype(nil).Valid)
	assert.True(t, pgconv.DateFromPgtype(pgtype.Date{}).IsZero())
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.False(t, pgconv.IsNoRows(assert.AnError))
}
