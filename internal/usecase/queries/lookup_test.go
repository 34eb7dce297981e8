//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"property-rental/internal/domain/property"
	"property-rental/internal/domain/reservation"
	"property-rental/internal/infra"
	"property-rental/internal/usecase/queries"
	"property-rental/tests/common/builder"
	queriesmock "property-rental/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errStorage = errors.New("storage down")

func notFound() error {
	return infra.WrapRepoErr("lookup", nil, infra.KindNotFound)
}

func TestGetByID_NotFoundMapping(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("owner", func(t *testing.T) {
		store := queriesmock.NewMockContactReadStore(gomock.NewController(t))
		store.EXPECT().FindByID(ctx, id).Return(nil, notFound())

		_, err := queries.NewOwnerQueries(store).GetByID(ctx, id)
		assert.ErrorIs(t, err, queries.ErrOwnerNotFound)
	})

	t.Run("host", func(t *testing.T) {
		store := queriesmock.NewMockContactReadStore(gomock.NewController(t))
		store.EXPECT().FindByID(ctx, id).Return(nil, notFound())

		_, err := queries.NewHostQueries(store).GetByID(ctx, id)
		assert.ErrorIs(t, err, queries.ErrHostNotFound)
	})

	t.Run("property", func(t *testing.T) {
		store := queriesmock.NewMockPropertyReadStore(gomock.NewController(t))
		store.EXPECT().FindByID(ctx, id).Return(nil, notFound())

		_, err := queries.NewPropertyQueries(store).GetByID(ctx, id)
		assert.ErrorIs(t, err, property.ErrPropertyNotFound)
	})

	t.Run("reservation", func(t *testing.T) {
		store := queriesmock.NewMockReservationReadStore(gomock.NewController(t))
		store.EXPECT().FindByID(ctx, id).Return(nil, notFound())

		_, err := queries.NewReservationQueries(store).GetByID(ctx, id)
		assert.ErrorIs(t, err, reservation.ErrReservationNotFound)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		store := queriesmock.NewMockReservationReadStore(gomock.NewController(t))
		store.EXPECT().FindByID(ctx, id).Return(nil, errStorage)

		_, err := queries.NewReservationQueries(store).GetByID(ctx, id)
		assert.ErrorIs(t, err, errStorage)
	})
}

func TestGetByID_Found(t *testing.T) {
	ctx := context.Background()
	prop := builder.NewPropertyBuilder()
	view := builder.NewReservationBuilder().WithProperty(prop.ID).BuildView(prop)

	store := queriesmock.NewMockReservationReadStore(gomock.NewController(t))
	store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
	store.EXPECT().List(ctx, queries.ReservationFilter{PropertyID: &prop.ID}).Return([]*queries.ReservationView{view}, nil)

	q := queries.NewReservationQueries(store)

	got, err := q.GetByID(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, view, got)

	list, err := q.List(ctx, queries.ReservationFilter{PropertyID: &prop.ID})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
