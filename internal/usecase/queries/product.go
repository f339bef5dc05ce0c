package queries

import (
	"context"

	"codevend/internal/infra"
	"codevend/internal/pkg/errs"
)

var ErrProductNotFound = errs.New("product not found")

type ProductReadStore interface {
	List(ctx context.Context) ([]*ProductView, error)
	GetByID(ctx context.Context, id string) (*ProductView, error)
}

type ProductQueries interface {
	List(ctx context.Context) ([]*ProductView, error)
	GetByID(ctx context.Context, id string) (*ProductView, error)
}

type productQueriesImpl struct {
	store ProductReadStore
}

func NewProductQueries(store ProductReadStore) ProductQueries {
	return &productQueriesImpl{store: store}
}

func (q *productQueriesImpl) List(ctx context.Context) ([]*ProductView, error) {
	views, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list products")
	}
	return views, nil
}

func (q *productQueriesImpl) GetByID(ctx context.Context, id string) (*ProductView, error) {
	view, err := q.store.GetByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Wrap(err, "failed to find product")
	}
	return view, nil
}
