package queries

import (
	"context"

	"property-rental/internal/infra"
	"property-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOwnerNotFound = errs.Mark(errs.New("owner not found"), errs.ErrNotFound)
	ErrHostNotFound  = errs.Mark(errs.New("host not found"), errs.ErrNotFound)
)

type ContactReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ContactView, error)
	List(ctx context.Context) ([]*ContactView, error)
}

type OwnerQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ContactView, error)
	List(ctx context.Context) ([]*ContactView, error)
}

type HostQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ContactView, error)
	List(ctx context.Context) ([]*ContactView, error)
}

type contactQueriesImpl struct {
	repo     ContactReadStore
	notFound error
}

func NewOwnerQueries(repo ContactReadStore) OwnerQueries {
	return &contactQueriesImpl{repo: repo, notFound: ErrOwnerNotFound}
}

func NewHostQueries(repo ContactReadStore) HostQueries {
	return &contactQueriesImpl{repo: repo, notFound: ErrHostNotFound}
}

func (q *contactQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ContactView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, q.notFound
		}
		return nil, err
	}
	return v, nil
}

func (q *contactQueriesImpl) List(ctx context.Context) ([]*ContactView, error) {
	return q.repo.List(ctx)
}
