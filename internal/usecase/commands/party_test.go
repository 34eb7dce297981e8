//go:build unit

package commands_test

import (
	"context"
	"testing"

	"property-rental/internal/domain/party"
	"property-rental/internal/pkg/errs"
	"property-rental/internal/usecase/commands"
	"property-rental/internal/usecase/shared"
	"property-rental/tests/common/builder"
	queriesmock "property-rental/tests/mock/queries"
	sharedmock "property-rental/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestContactCommands_Create(t *testing.T) {
	ctx := context.Background()

	expectTx := func(ctrl *gomock.Controller) (*sharedmock.MockUnitOfWork, *sharedmock.MockTx) {
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		tx := sharedmock.NewMockTx(ctrl)
		tx.EXPECT().DB().Return(nil).AnyTimes()
		uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
				return fn(ctx, tx)
			}).AnyTimes()
		return uow, tx
	}

	t.Run("owner goes to the owner table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow, tx := expectTx(ctrl)
		repo := sharedmock.NewMockContactRepository(ctrl)
		q := queriesmock.NewMockOwnerQueries(ctrl)
		contact := builder.NewContactBuilder()
		id := uuid.New()

		tx.EXPECT().Owners().Return(repo)
		repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, c *party.Contact) (uuid.UUID, error) {
				assert.Equal(t, party.RoleOwner, c.Role())
				return id, nil
			})
		q.EXPECT().GetByID(gomock.Any(), id).Return(contact.WithID(id).BuildView(), nil)

		view, err := commands.NewOwnerCommands(uow, q).Create(ctx, contact.BuildCreateRequestDTO())

		require.NoError(t, err)
		assert.Equal(t, id, view.ID)
	})

	t.Run("host goes to the host table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow, tx := expectTx(ctrl)
		repo := sharedmock.NewMockContactRepository(ctrl)
		q := queriesmock.NewMockHostQueries(ctrl)
		contact := builder.NewContactBuilder()

		tx.EXPECT().Hosts().Return(repo)
		repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(contact.ID, nil)
		q.EXPECT().GetByID(gomock.Any(), contact.ID).Return(contact.BuildView(), nil)

		_, err := commands.NewHostCommands(uow, q).Create(ctx, contact.BuildCreateRequestDTO())

		require.NoError(t, err)
	})

	t.Run("invalid fields never reach storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		q := queriesmock.NewMockHostQueries(ctrl)
		req := builder.NewContactBuilder().With(func(b *builder.ContactBuilder) {
			b.Name = "   "
			b.Email = "nope"
		}).BuildCreateRequestDTO()

		_, err := commands.NewHostCommands(uow, q).Create(ctx, req)

		fields, ok := errs.AsFieldErrors(err)
		require.True(t, ok, "got %v", err)
		assert.Contains(t, fields, "name")
		assert.Contains(t, fields, "email")
	})
}
