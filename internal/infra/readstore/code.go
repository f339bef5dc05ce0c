package readstore

import (
	"context"
	"strconv"

	"codevend/internal/infra"
	"codevend/internal/pkg/pgconv"
	"codevend/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CodeReadStore struct {
	pool *pgxpool.Pool
}

func NewCodeReadStore(pool *pgxpool.Pool) *CodeReadStore {
	return &CodeReadStore{pool: pool}
}

func (r *CodeReadStore) ListByProduct(ctx context.Context, productID string, filters queries.CodeFilters, limit int) ([]*queries.CodeView, error) {
	sql := `
SELECT id, product_id, value, status, assigned_to, assigned_at, created_at
  FROM codes
 WHERE product_id = $1
`
	args := []any{productID}
	if filters.Status != nil {
		args = append(args, *filters.Status)
		sql += " AND status = $2"
	}
	args = append(args, limit)
	sql += " ORDER BY created_at DESC LIMIT $" + strconv.Itoa(len(args))

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list codes", err)
	}
	defer rows.Close()

	var views []*queries.CodeView
	for rows.Next() {
		var (
			view       queries.CodeView
			assignedTo pgtype.Text
			assignedAt pgtype.Timestamptz
			createdAt  pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.ProductID, &view.Value, &view.Status, &assignedTo, &assignedAt, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan code row", err)
		}
		view.AssignedTo = pgconv.StringPtrFromPgtype(assignedTo)
		view.AssignedAt = pgconv.TimePtrFromPgtype(assignedAt)
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read code rows", err)
	}
	return views, nil
}
