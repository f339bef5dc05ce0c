package readstore

import (
	"context"

	"codevend/internal/infra"
	"codevend/internal/pkg/pgconv"
	"codevend/internal/usecase/commands"
	"codevend/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductReadStore struct {
	pool *pgxpool.Pool
}

func NewProductReadStore(pool *pgxpool.Pool) *ProductReadStore {
	return &ProductReadStore{pool: pool}
}

// Find returns the write-side snapshot the allocation engine and loader need.
func (r *ProductReadStore) Find(ctx context.Context, id string) (*commands.ProductSnapshot, error) {
	const sql = `
SELECT id, max_per_user, status
  FROM products
 WHERE id = $1
`
	var (
		snap   commands.ProductSnapshot
		status string
	)
	if err := r.pool.QueryRow(ctx, sql, id).Scan(&snap.ID, &snap.MaxPerUser, &status); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product", err)
	}
	snap.Active = status == "active"
	return &snap, nil
}

func (r *ProductReadStore) GetByID(ctx context.Context, id string) (*queries.ProductView, error) {
	const sql = `
SELECT id, name, description, max_per_user, status, created_at, updated_at
  FROM products
 WHERE id = $1
`
	view, err := scanProductView(r.pool.QueryRow(ctx, sql, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product", err)
	}
	return view, nil
}

func (r *ProductReadStore) List(ctx context.Context) ([]*queries.ProductView, error) {
	const sql = `
SELECT id, name, description, max_per_user, status, created_at, updated_at
  FROM products
 ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, sql)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	var views []*queries.ProductView
	for rows.Next() {
		view, err := scanProductView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read product rows", err)
	}
	return views, nil
}

func scanProductView(row pgx.Row) (*queries.ProductView, error) {
	var (
		view        queries.ProductView
		description pgtype.Text
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)
	err := row.Scan(&view.ID, &view.Name, &description, &view.MaxPerUser, &view.Status, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	view.Description = pgconv.StringPtrFromPgtype(description)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
