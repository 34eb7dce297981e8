package readstore

import (
	"context"

	"property-rental/internal/infra"
	sqlc "property-rental/internal/infra/sqlc/generated"
	"property-rental/internal/pkg/pgconv"
	"property-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type PropertyViewQueries interface {
	GetPropertyByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Property, error)
	ListProperties(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPropertiesParams) ([]sqlc.Property, error)
}

type PropertyReadStore struct {
	queries PropertyViewQueries
	db      sqlc.DBTX
}

func NewPropertyReadStore(queries PropertyViewQueries, db sqlc.DBTX) *PropertyReadStore {
	return &PropertyReadStore{queries: queries, db: db}
}

func (r *PropertyReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PropertyView, error) {
	row, err := r.queries.GetPropertyByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find property by ID", err)
	}
	view, err := propertyToView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid property row", err)
	}
	return view, nil
}

func (r *PropertyReadStore) List(ctx context.Context, filter queries.PropertyFilter) ([]*queries.PropertyView, error) {
	params := sqlc.ListPropertiesParams{
		Neighborhood: pgconv.StringPtrToPgtype(filter.Neighborhood),
		City:         pgconv.StringPtrToPgtype(filter.City),
		MinCapacity:  pgconv.Int32PtrToPgtype(filter.MinCapacity),
		MaxPrice:     pgconv.NumericPtrToPgtype(filter.MaxPrice),
	}

	rows, err := r.queries.ListProperties(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list properties", err)
	}

	result := make([]*queries.PropertyView, len(rows))
	for i, row := range rows {
		view, err := propertyToView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid property row", err)
		}
		result[i] = view
	}
	return result, nil
}
