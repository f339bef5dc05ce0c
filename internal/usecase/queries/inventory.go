package queries

import (
	"context"

	"codevend/internal/pkg/errs"
)

type InventoryReadStore interface {
	CountByStatus(ctx context.Context, productID string) (*InventoryView, error)
}

type InventoryQueries interface {
	Status(ctx context.Context, productID string) (*InventoryView, error)
}

type inventoryQueriesImpl struct {
	store InventoryReadStore
}

func NewInventoryQueries(store InventoryReadStore) InventoryQueries {
	return &inventoryQueriesImpl{store: store}
}

// Status reports available/assigned counts for a product. An unknown product
// yields {0, 0} rather than an error; the write paths treat a missing product
// as a failure, but the status read deliberately does not.
func (q *inventoryQueriesImpl) Status(ctx context.Context, productID string) (*InventoryView, error) {
	view, err := q.store.CountByStatus(ctx, productID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to count inventory")
	}
	return view, nil
}
