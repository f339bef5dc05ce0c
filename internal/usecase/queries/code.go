package queries

import (
	"context"

	"codevend/internal/pkg/errs"
)

// CodeFilters narrows the admin code listing; a nil Status means any.
type CodeFilters struct {
	Status *string
}

type CodeReadStore interface {
	ListByProduct(ctx context.Context, productID string, filters CodeFilters, limit int) ([]*CodeView, error)
}

type CodeQueries interface {
	ListByProduct(ctx context.Context, productID string, filters CodeFilters, limit int) ([]*CodeView, error)
}

type codeQueriesImpl struct {
	store CodeReadStore
}

func NewCodeQueries(store CodeReadStore) CodeQueries {
	return &codeQueriesImpl{store: store}
}

func (q *codeQueriesImpl) ListByProduct(ctx context.Context, productID string, filters CodeFilters, limit int) ([]*CodeView, error) {
	views, err := q.store.ListByProduct(ctx, productID, filters, ValidateLimit(limit))
	if err != nil {
		return nil, errs.Wrap(err, "failed to list codes")
	}
	return views, nil
}
