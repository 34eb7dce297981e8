//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"property-rental/internal/domain/commission"
	"property-rental/internal/infra"
	"property-rental/internal/infra/repository"
	sqlc "property-rental/internal/infra/sqlc/generated"
	"property-rental/internal/pkg/pgconv"
	repositorymock "property-rental/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func entry(t commission.Type, beneficiary uuid.UUID) commission.Entry {
	return commission.Entry{
		Type:            t,
		ReservationID:   uuid.New(),
		BeneficiaryID:   beneficiary,
		ReservationDate: time.Date(2024, 3, 30, 0, 0, 0, 0, time.UTC),
		Share: commission.Share{
			Percent: decimal.RequireFromString("0.7"),
			Value:   decimal.RequireFromString("844.62"),
		},
	}
}

func TestCommissionRepository_Create(t *testing.T) {
	ctx := context.Background()
	rowID := uuid.New()

	t.Run("seazone row has no beneficiary column", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockCommissionWriteQueries(ctrl)
		e := entry(commission.TypeSeazone, uuid.Nil)

		q.EXPECT().CreateSeazoneCommission(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateSeazoneCommissionParams) (uuid.UUID, error) {
				assert.Equal(t, e.ReservationID, arg.ReservationID)
				assert.Equal(t, e.ReservationDate, pgconv.DateFromPgtype(arg.ReservationDate))
				v, err := pgconv.DecimalFromNumeric(arg.CommissionValue)
				require.NoError(t, err)
				assert.Equal(t, "844.62", v.StringFixed(2))
				return rowID, nil
			})

		id, err := repository.NewCommissionRepository(q).Create(ctx, nil, e)

		require.NoError(t, err)
		assert.Equal(t, rowID, id)
	})

	t.Run("host row carries the host id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockCommissionWriteQueries(ctrl)
		hostID := uuid.New()

		q.EXPECT().CreateHostCommission(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateHostCommissionParams) (uuid.UUID, error) {
				assert.Equal(t, hostID, arg.HostID)
				return rowID, nil
			})

		_, err := repository.NewCommissionRepository(q).Create(ctx, nil, entry(commission.TypeHost, hostID))
		require.NoError(t, err)
	})

	t.Run("owner row carries the owner id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockCommissionWriteQueries(ctrl)
		ownerID := uuid.New()

		q.EXPECT().CreateOwnerCommission(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateOwnerCommissionParams) (uuid.UUID, error) {
				assert.Equal(t, ownerID, arg.OwnerID)
				return rowID, nil
			})

		_, err := repository.NewCommissionRepository(q).Create(ctx, nil, entry(commission.TypeOwner, ownerID))
		require.NoError(t, err)
	})

	t.Run("unknown type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockCommissionWriteQueries(ctrl)

		_, err := repository.NewCommissionRepository(q).Create(ctx, nil, entry(commission.Type("platform"), uuid.Nil))
		assert.ErrorIs(t, err, commission.ErrInvalidCommissionType)
	})

	t.Run("duplicate reservation is classified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockCommissionWriteQueries(ctrl)
		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "host_commissions_reservation_id_key"}

		q.EXPECT().CreateHostCommission(ctx, gomock.Any(), gomock.Any()).Return(uuid.Nil, pgErr)

		_, err := repository.NewCommissionRepository(q).Create(ctx, nil, entry(commission.TypeHost, uuid.New()))

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.Equal(t, "host_commissions_reservation_id_key", infra.ConstraintOf(err))
		var target *pgconn.PgError
		assert.True(t, errors.As(err, &target))
	})
}
