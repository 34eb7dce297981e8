package commands

import (
	"context"

	"property-rental/internal/domain/property"
	reqdto "property-rental/internal/handler/dto/request"
	"property-rental/internal/pkg/errs"
	"property-rental/internal/usecase/queries"
	"property-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

type PropertyCommands interface {
	Create(ctx context.Context, req reqdto.CreatePropertyRequest) (*queries.PropertyView, error)
}

type propertyCommandsImpl struct {
	uow             shared.UnitOfWork
	propertyQueries queries.PropertyQueries
}

func NewPropertyCommands(uow shared.UnitOfWork, propertyQueries queries.PropertyQueries) PropertyCommands {
	return &propertyCommandsImpl{uow: uow, propertyQueries: propertyQueries}
}

func (uc *propertyCommandsImpl) Create(ctx context.Context, req reqdto.CreatePropertyRequest) (*queries.PropertyView, error) {
	prop, err := property.NewProperty(req.ToParams())
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := uc.checkParties(ctx, tx.Reads(), prop); err != nil {
			return err
		}
		id, err := tx.Properties().Create(ctx, tx.DB(), prop)
		if err != nil {
			return err
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := uc.propertyQueries.GetByID(ctx, createdID)
	if err != nil {
		return nil, errs.Wrap(err, "load created property")
	}
	return view, nil
}

// checkParties reports unknown owner and host ids as field errors.
func (uc *propertyCommandsImpl) checkParties(ctx context.Context, reads shared.CommandReads, prop *property.Property) error {
	fe := errs.NewFieldErrors()

	ok, err := reads.OwnerExists(ctx, prop.OwnerID())
	if err != nil {
		return err
	}
	if !ok {
		fe.Add("owner", errs.MissingReferenceMessage(prop.OwnerID()))
	}

	ok, err = reads.HostExists(ctx, prop.HostID())
	if err != nil {
		return err
	}
	if !ok {
		fe.Add("host", errs.MissingReferenceMessage(prop.HostID()))
	}
	return fe.Err()
}
