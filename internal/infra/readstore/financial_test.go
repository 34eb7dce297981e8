//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"property-rental/internal/domain/commission"
	"property-rental/internal/infra"
	"property-rental/internal/infra/readstore"
	sqlc "property-rental/internal/infra/sqlc/generated"
	"property-rental/internal/pkg/pgconv"
	readstoremock "property-rental/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

func numeric(s string) pgtype.Numeric {
	return pgconv.NumericFromDecimal(decimal.RequireFromString(s))
}

// =============================================================================
// StatementByProperty Tests
// =============================================================================

func TestFinancialReadStore_StatementByProperty(t *testing.T) {
	ctx := context.Background()
	propertyID := uuid.New()

	t.Run("seazone without a period leaves both bounds null", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockFinancialViewQueries(ctrl)

		mockQueries.EXPECT().SeazoneCommissionsByProperty(ctx, gomock.Any(), sqlc.SeazoneCommissionsByPropertyParams{}).
			Return([]sqlc.SeazoneCommissionsByPropertyRow{
				{PropertyID: propertyID, TotalCommission: numeric("120.66"), TotalReservations: 1},
			}, nil)

		rows, err := readstore.NewFinancialReadStore(mockQueries).StatementByProperty(ctx, nil, commission.TypeSeazone, nil, nil)

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, propertyID, rows[0].PropertyID)
		assert.Equal(t, "120.66", rows[0].TotalCommission.StringFixed(2))
		assert.Equal(t, int64(1), rows[0].TotalReservations)
	})

	t.Run("host with a period passes the month bounds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockFinancialViewQueries(ctrl)
		from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, 0)

		mockQueries.EXPECT().HostCommissionsByProperty(ctx, gomock.Any(), sqlc.HostCommissionsByPropertyParams{
			FromDate: pgconv.DateToPgtype(from),
			ToDate:   pgconv.DateToPgtype(to),
		}).Return([]sqlc.HostCommissionsByPropertyRow{
			{PropertyID: propertyID, TotalCommission: numeric("0"), TotalReservations: 0},
		}, nil)

		rows, err := readstore.NewFinancialReadStore(mockQueries).StatementByProperty(ctx, nil, commission.TypeHost, &from, &to)

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.True(t, rows[0].TotalCommission.IsZero())
	})

	t.Run("owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockFinancialViewQueries(ctrl)

		mockQueries.EXPECT().OwnerCommissionsByProperty(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)

		rows, err := readstore.NewFinancialReadStore(mockQueries).StatementByProperty(ctx, nil, commission.TypeOwner, nil, nil)

		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("database error is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockFinancialViewQueries(ctrl)

		mockQueries.EXPECT().OwnerCommissionsByProperty(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		rows, err := readstore.NewFinancialReadStore(mockQueries).StatementByProperty(ctx, nil, commission.TypeOwner, nil, nil)

		require.Error(t, err)
		assert.Nil(t, rows)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure), "got %v", err)
	})

	t.Run("unknown type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockFinancialViewQueries(ctrl)

		_, err := readstore.NewFinancialReadStore(mockQueries).StatementByProperty(ctx, nil, commission.Type("x"), nil, nil)
		assert.ErrorIs(t, err, commission.ErrInvalidCommissionType)
	})
}
