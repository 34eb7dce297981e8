package repository

import (
	"context"

	"property-rental/internal/domain/party"
	"property-rental/internal/infra"
	"property-rental/internal/infra/repository/converter"
	sqlc "property-rental/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type OwnerWriteQueries interface {
	CreateOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOwnerParams) (sqlc.Owner, error)
}

type HostWriteQueries interface {
	CreateHost(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateHostParams) (sqlc.Host, error)
}

type OwnerRepository struct {
	queries OwnerWriteQueries
}

func NewOwnerRepository(queries OwnerWriteQueries) *OwnerRepository {
	return &OwnerRepository{queries: queries}
}

func (r *OwnerRepository) Create(ctx context.Context, tx sqlc.DBTX, c *party.Contact) (uuid.UUID, error) {
	row, err := r.queries.CreateOwner(ctx, tx, converter.OwnerToInfra(c))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create owner", err)
	}
	return row.ID, nil
}

type HostRepository struct {
	queries HostWriteQueries
}

func NewHostRepository(queries HostWriteQueries) *HostRepository {
	return &HostRepository{queries: queries}
}

func (r *HostRepository) Create(ctx context.Context, tx sqlc.DBTX, c *party.Contact) (uuid.UUID, error) {
	row, err := r.queries.CreateHost(ctx, tx, converter.HostToInfra(c))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create host", err)
	}
	return row.ID, nil
}
