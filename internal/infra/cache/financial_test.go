//go:build unit

package cache_test

import (
	"context"
	"testing"
	"time"

	"property-rental/internal/domain/commission"
	"property-rental/internal/infra/cache"
	sqlc "property-rental/internal/infra/sqlc/generated"
	"property-rental/internal/usecase/queries"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T) (*cache.FinancialCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{
		Addr:        mr.Addr(),
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewFinancialCache(client, time.Minute), mr
}

func statement() *queries.FinancialStatement {
	return &queries.FinancialStatement{
		TotalCommission:   decimal.RequireFromString("120.66"),
		TotalReservations: 1,
		PropertiesStatement: []queries.PropertyStatement{
			{PropertyID: uuid.New(), TotalCommission: decimal.RequireFromString("120.66"), TotalReservations: 1},
		},
	}
}

func TestFinancialCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss on empty cache reports generation zero", func(t *testing.T) {
		c, _ := newCache(t)
		st, gen, ok := c.Get(ctx, "seazone:all")
		assert.False(t, ok)
		assert.Nil(t, st)
		assert.Equal(t, int64(0), gen)
	})

	t.Run("round trip keeps amounts", func(t *testing.T) {
		c, _ := newCache(t)
		want := statement()
		_, gen, _ := c.Get(ctx, "seazone:2024-03")
		c.Set(ctx, "seazone:2024-03", gen, want)

		got, _, ok := c.Get(ctx, "seazone:2024-03")
		require.True(t, ok)
		assert.True(t, want.TotalCommission.Equal(got.TotalCommission))
		assert.Equal(t, want.TotalReservations, got.TotalReservations)
		require.Len(t, got.PropertiesStatement, 1)
		assert.Equal(t, want.PropertiesStatement[0].PropertyID, got.PropertiesStatement[0].PropertyID)
	})

	t.Run("invalidate drops every key", func(t *testing.T) {
		c, _ := newCache(t)
		c.Set(ctx, "seazone:all", 0, statement())
		c.Set(ctx, "host:all", 0, statement())

		c.Invalidate(ctx)

		_, gen, ok := c.Get(ctx, "seazone:all")
		assert.False(t, ok)
		assert.Equal(t, int64(1), gen)
		_, _, ok = c.Get(ctx, "host:all")
		assert.False(t, ok)
	})

	t.Run("write under a superseded generation is never served", func(t *testing.T) {
		c, _ := newCache(t)
		_, gen, ok := c.Get(ctx, "owner:all")
		require.False(t, ok)

		c.Invalidate(ctx)
		c.Set(ctx, "owner:all", gen, statement())

		_, _, ok = c.Get(ctx, "owner:all")
		assert.False(t, ok)
	})

	t.Run("entries expire after ttl", func(t *testing.T) {
		c, mr := newCache(t)
		c.Set(ctx, "owner:all", 0, statement())

		mr.FastForward(2 * time.Minute)

		_, _, ok := c.Get(ctx, "owner:all")
		assert.False(t, ok)
	})

	t.Run("unreachable redis degrades to miss", func(t *testing.T) {
		c, mr := newCache(t)
		c.Set(ctx, "owner:all", 0, statement())
		mr.Close()

		_, gen, ok := c.Get(ctx, "owner:all")
		assert.False(t, ok)
		assert.Negative(t, gen)
		c.Set(ctx, "owner:all", gen, statement())
		c.Invalidate(ctx)
	})
}

type directRunner struct{}

func (directRunner) WithinReadOnly(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

// bookingStore returns the current total and can simulate a booking that
// commits and invalidates the cache while the statement is being read.
type bookingStore struct {
	total        decimal.Decimal
	duringSelect func()
}

func (s *bookingStore) StatementByProperty(context.Context, sqlc.DBTX, commission.Type, *time.Time, *time.Time) ([]queries.PropertyStatement, error) {
	rows := []queries.PropertyStatement{{PropertyID: uuid.Nil, TotalCommission: s.total, TotalReservations: 1}}
	if s.duringSelect != nil {
		hook := s.duringSelect
		s.duringSelect = nil
		hook()
	}
	return rows, nil
}

func TestFinancialCache_BookingDuringAggregate(t *testing.T) {
	ctx := context.Background()
	c, _ := newCache(t)
	store := &bookingStore{total: decimal.RequireFromString("10.00")}
	store.duringSelect = func() {
		store.total = decimal.RequireFromString("20.00")
		c.Invalidate(ctx)
	}
	q := queries.NewFinancialQueries(directRunner{}, store, c)

	first, err := q.Aggregate(ctx, "seazone", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "10.00", first.TotalCommission.StringFixed(2))

	second, err := q.Aggregate(ctx, "seazone", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "20.00", second.TotalCommission.StringFixed(2))

	third, err := q.Aggregate(ctx, "seazone", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "20.00", third.TotalCommission.StringFixed(2))
}
