//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"property-rental/internal/domain/commission"
	sqlc "property-rental/internal/infra/sqlc/generated"
	"property-rental/internal/pkg/errs"
	"property-rental/internal/usecase/queries"
	queriesmock "property-rental/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type financialMocks struct {
	runner *queriesmock.MockReadOnlyRunner
	store  *queriesmock.MockFinancialReadStore
	cache  *queriesmock.MockFinancialCache
}

func newFinancialMocks(ctrl *gomock.Controller) financialMocks {
	m := financialMocks{
		runner: queriesmock.NewMockReadOnlyRunner(ctrl),
		store:  queriesmock.NewMockFinancialReadStore(ctrl),
		cache:  queriesmock.NewMockFinancialCache(ctrl),
	}
	m.runner.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
			return fn(ctx, nil)
		}).AnyTimes()
	return m
}

func intPtr(v int) *int { return &v }

func TestFinancialQueries_Aggregate(t *testing.T) {
	ctx := context.Background()
	p1, p2 := uuid.New(), uuid.New()
	rows := []queries.PropertyStatement{
		{PropertyID: p1, TotalCommission: decimal.RequireFromString("120.66"), TotalReservations: 1},
		{PropertyID: p2, TotalCommission: decimal.RequireFromString("10.05"), TotalReservations: 2},
		{PropertyID: uuid.New(), TotalCommission: decimal.Zero, TotalReservations: 0},
	}

	t.Run("cache miss: sums per-property rows and stores the result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newFinancialMocks(ctrl)

		m.cache.EXPECT().Get(gomock.Any(), "seazone:all").Return(nil, int64(4), false)
		m.store.EXPECT().StatementByProperty(gomock.Any(), gomock.Any(), commission.TypeSeazone, nil, nil).Return(rows, nil)
		m.cache.EXPECT().Set(gomock.Any(), "seazone:all", int64(4), gomock.Any())

		st, err := queries.NewFinancialQueries(m.runner, m.store, m.cache).Aggregate(ctx, "seazone", nil, nil)

		require.NoError(t, err)
		assert.Equal(t, "130.71", st.TotalCommission.StringFixed(2))
		assert.Equal(t, int64(3), st.TotalReservations)
		assert.Len(t, st.PropertiesStatement, 3)
		assert.Equal(t, p1, st.PropertiesStatement[0].PropertyID)
	})

	t.Run("cache hit: storage is not touched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newFinancialMocks(ctrl)
		cached := &queries.FinancialStatement{TotalCommission: decimal.NewFromInt(7), TotalReservations: 1}

		m.cache.EXPECT().Get(gomock.Any(), "host:2024-03").Return(cached, int64(0), true)

		st, err := queries.NewFinancialQueries(m.runner, m.store, m.cache).Aggregate(ctx, "host", intPtr(2024), intPtr(3))

		require.NoError(t, err)
		assert.Same(t, cached, st)
	})

	t.Run("month filter passes the half-open month range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newFinancialMocks(ctrl)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, int64(0), false)
		m.store.EXPECT().StatementByProperty(gomock.Any(), gomock.Any(), commission.TypeOwner, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _ commission.Type, from, to *time.Time) ([]queries.PropertyStatement, error) {
				require.NotNil(t, from)
				require.NotNil(t, to)
				assert.Equal(t, "2024-12-01", from.Format(time.DateOnly))
				assert.Equal(t, "2025-01-01", to.Format(time.DateOnly))
				return nil, nil
			})
		m.cache.EXPECT().Set(gomock.Any(), "owner:2024-12", int64(0), gomock.Any())

		st, err := queries.NewFinancialQueries(m.runner, m.store, m.cache).Aggregate(ctx, "owner", intPtr(2024), intPtr(12))

		require.NoError(t, err)
		assert.True(t, st.TotalCommission.IsZero())
		assert.NotNil(t, st.PropertiesStatement)
	})

	t.Run("input errors are rejected before the cache", func(t *testing.T) {
		testCases := []struct {
			name        string
			typ         string
			year, month *int
			expected    error
		}{
			{"unknown type", "platform", nil, nil, commission.ErrInvalidCommissionType},
			{"missing type", "", nil, nil, commission.ErrInvalidCommissionType},
			{"year without month", "seazone", intPtr(2024), nil, commission.ErrIncompleteDateFilter},
			{"month without year", "seazone", nil, intPtr(1), commission.ErrIncompleteDateFilter},
			{"month out of range", "seazone", intPtr(2024), intPtr(13), commission.ErrInvalidMonth},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				m := newFinancialMocks(ctrl)

				_, err := queries.NewFinancialQueries(m.runner, m.store, m.cache).Aggregate(ctx, tc.typ, tc.year, tc.month)

				assert.True(t, errs.Is(err, tc.expected), "expected %v, got %v", tc.expected, err)
				assert.True(t, errs.Is(err, errs.ErrInvalidRequest))
			})
		}
	})

	t.Run("storage errors are not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newFinancialMocks(ctrl)
		dbErr := errors.New("timeout")

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, int64(0), false)
		m.store.EXPECT().StatementByProperty(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbErr)

		_, err := queries.NewFinancialQueries(m.runner, m.store, m.cache).Aggregate(ctx, "host", nil, nil)

		assert.ErrorIs(t, err, dbErr)
	})
}
