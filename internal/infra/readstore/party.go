package readstore

import (
	"context"

	"property-rental/internal/infra"
	sqlc "property-rental/internal/infra/sqlc/generated"
	"property-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type OwnerViewQueries interface {
	GetOwnerByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Owner, error)
	ListOwners(ctx context.Context, db sqlc.DBTX) ([]sqlc.Owner, error)
}

type HostViewQueries interface {
	GetHostByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Host, error)
	ListHosts(ctx context.Context, db sqlc.DBTX) ([]sqlc.Host, error)
}

type OwnerReadStore struct {
	queries OwnerViewQueries
	db      sqlc.DBTX
}

func NewOwnerReadStore(queries OwnerViewQueries, db sqlc.DBTX) *OwnerReadStore {
	return &OwnerReadStore{queries: queries, db: db}
}

func (r *OwnerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ContactView, error) {
	row, err := r.queries.GetOwnerByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find owner by ID", err)
	}
	return ownerToView(row), nil
}

func (r *OwnerReadStore) List(ctx context.Context) ([]*queries.ContactView, error) {
	rows, err := r.queries.ListOwners(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list owners", err)
	}
	result := make([]*queries.ContactView, len(rows))
	for i, row := range rows {
		result[i] = ownerToView(row)
	}
	return result, nil
}

type HostReadStore struct {
	queries HostViewQueries
	db      sqlc.DBTX
}

func NewHostReadStore(queries HostViewQueries, db sqlc.DBTX) *HostReadStore {
	return &HostReadStore{queries: queries, db: db}
}

func (r *HostReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ContactView, error) {
	row, err := r.queries.GetHostByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find host by ID", err)
	}
	return hostToView(row), nil
}

func (r *HostReadStore) List(ctx context.Context) ([]*queries.ContactView, error) {
	rows, err := r.queries.ListHosts(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hosts", err)
	}
	result := make([]*queries.ContactView, len(rows))
	for i, row := range rows {
		result[i] = hostToView(row)
	}
	return result, nil
}
