package commands

import (
	"context"

	"property-rental/internal/domain/party"
	reqdto "property-rental/internal/handler/dto/request"
	"property-rental/internal/pkg/errs"
	"property-rental/internal/usecase/queries"
	"property-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

type OwnerCommands interface {
	Create(ctx context.Context, req reqdto.CreateContactRequest) (*queries.ContactView, error)
}

type HostCommands interface {
	Create(ctx context.Context, req reqdto.CreateContactRequest) (*queries.ContactView, error)
}

type contactReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*queries.ContactView, error)
}

type contactCommandsImpl struct {
	role   party.Role
	uow    shared.UnitOfWork
	reader contactReader
}

func NewOwnerCommands(uow shared.UnitOfWork, q queries.OwnerQueries) OwnerCommands {
	return &contactCommandsImpl{role: party.RoleOwner, uow: uow, reader: q}
}

func NewHostCommands(uow shared.UnitOfWork, q queries.HostQueries) HostCommands {
	return &contactCommandsImpl{role: party.RoleHost, uow: uow, reader: q}
}

func (uc *contactCommandsImpl) Create(ctx context.Context, req reqdto.CreateContactRequest) (*queries.ContactView, error) {
	contact, err := party.NewContact(uc.role, req.Name, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		repo := tx.Owners()
		if uc.role == party.RoleHost {
			repo = tx.Hosts()
		}
		id, err := repo.Create(ctx, tx.DB(), contact)
		if err != nil {
			return err
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := uc.reader.GetByID(ctx, createdID)
	if err != nil {
		return nil, errs.Wrap(err, "load created "+uc.role.String())
	}
	return view, nil
}
