package readstore

import (
	"context"

	"codevend/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DeliveryReadStore struct {
	pool *pgxpool.Pool
}

func NewDeliveryReadStore(pool *pgxpool.Pool) *DeliveryReadStore {
	return &DeliveryReadStore{pool: pool}
}

// ListCodes returns the code values a user has received for a product in
// insertion order; the last element is the most recently delivered code.
func (r *DeliveryReadStore) ListCodes(ctx context.Context, productID, user string) ([]string, error) {
	const sql = `
SELECT code_value
  FROM deliveries
 WHERE product_id = $1 AND user_ref = $2
 ORDER BY id
`
	rows, err := r.pool.Query(ctx, sql, productID, user)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list deliveries", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, infra.WrapRepoErr("failed to scan delivery row", err)
		}
		codes = append(codes, code)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read delivery rows", err)
	}
	return codes, nil
}
