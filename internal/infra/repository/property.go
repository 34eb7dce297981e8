package repository

import (
	"context"

	"property-rental/internal/domain/property"
	"property-rental/internal/infra"
	"property-rental/internal/infra/repository/converter"
	sqlc "property-rental/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type PropertyWriteQueries interface {
	CreateProperty(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePropertyParams) (uuid.UUID, error)
}

type PropertyRepository struct {
	queries PropertyWriteQueries
}

func NewPropertyRepository(queries PropertyWriteQueries) *PropertyRepository {
	return &PropertyRepository{queries: queries}
}

func (r *PropertyRepository) Create(ctx context.Context, tx sqlc.DBTX, p *property.Property) (uuid.UUID, error) {
	id, err := r.queries.CreateProperty(ctx, tx, converter.PropertyToInfra(p))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create property", err)
	}
	return id, nil
}
