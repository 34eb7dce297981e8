package repository

import (
	"context"

	"property-rental/internal/domain/commission"
	"property-rental/internal/infra"
	"property-rental/internal/infra/repository/converter"
	sqlc "property-rental/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type CommissionWriteQueries interface {
	CreateSeazoneCommission(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSeazoneCommissionParams) (uuid.UUID, error)
	CreateHostCommission(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateHostCommissionParams) (uuid.UUID, error)
	CreateOwnerCommission(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOwnerCommissionParams) (uuid.UUID, error)
}

type CommissionRepository struct {
	queries CommissionWriteQueries
}

func NewCommissionRepository(queries CommissionWriteQueries) *CommissionRepository {
	return &CommissionRepository{queries: queries}
}

// Create stores entry in the table matching its type.
func (r *CommissionRepository) Create(ctx context.Context, tx sqlc.DBTX, entry commission.Entry) (uuid.UUID, error) {
	var (
		id  uuid.UUID
		err error
	)
	switch entry.Type {
	case commission.TypeSeazone:
		id, err = r.queries.CreateSeazoneCommission(ctx, tx, converter.SeazoneCommissionToInfra(entry))
	case commission.TypeHost:
		id, err = r.queries.CreateHostCommission(ctx, tx, converter.HostCommissionToInfra(entry))
	case commission.TypeOwner:
		id, err = r.queries.CreateOwnerCommission(ctx, tx, converter.OwnerCommissionToInfra(entry))
	default:
		return uuid.Nil, commission.ErrInvalidCommissionType
	}
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create "+entry.Type.String()+" commission", err)
	}
	return id, nil
}
