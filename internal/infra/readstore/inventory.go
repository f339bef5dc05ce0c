package readstore

import (
	"context"

	"codevend/internal/infra"
	"codevend/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type InventoryReadStore struct {
	pool *pgxpool.Pool
}

func NewInventoryReadStore(pool *pgxpool.Pool) *InventoryReadStore {
	return &InventoryReadStore{pool: pool}
}

// CountByStatus aggregates the pool at call time. A product with no codes, or
// no product at all, counts as {0, 0}.
func (r *InventoryReadStore) CountByStatus(ctx context.Context, productID string) (*queries.InventoryView, error) {
	const sql = `
SELECT COUNT(*) FILTER (WHERE status = 'available'),
       COUNT(*) FILTER (WHERE status = 'assigned')
  FROM codes
 WHERE product_id = $1
`
	var view queries.InventoryView
	if err := r.pool.QueryRow(ctx, sql, productID).Scan(&view.Available, &view.Assigned); err != nil {
		return nil, infra.WrapRepoErr("failed to count codes by status", err)
	}
	return &view, nil
}
