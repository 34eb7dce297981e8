package queries

import (
	"context"

	"property-rental/internal/domain/property"
	"property-rental/internal/infra"

	"github.com/google/uuid"
)

type PropertyReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PropertyView, error)
	List(ctx context.Context, filter PropertyFilter) ([]*PropertyView, error)
}

type PropertyQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PropertyView, error)
	List(ctx context.Context, filter PropertyFilter) ([]*PropertyView, error)
}

type propertyQueriesImpl struct {
	repo PropertyReadStore
}

func NewPropertyQueries(repo PropertyReadStore) PropertyQueries {
	return &propertyQueriesImpl{repo: repo}
}

func (q *propertyQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PropertyView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, property.ErrPropertyNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *propertyQueriesImpl) List(ctx context.Context, filter PropertyFilter) ([]*PropertyView, error) {
	return q.repo.List(ctx, filter)
}
