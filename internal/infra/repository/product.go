package repository

import (
	"context"
	"fmt"
	"strings"

	"codevend/internal/domain/product"
	"codevend/internal/infra"
	"codevend/internal/pkg/pgconv"
	"codevend/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	const sql = `
INSERT INTO products (id, name, description, max_per_user, status)
VALUES ($1, $2, $3, $4, $5)
`
	_, err := r.pool.Exec(ctx, sql,
		p.ID(), p.Name(), p.Description(), p.MaxPerUser(), string(p.Status()),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("product id already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create product", err)
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, id string, patch commands.ProductPatch) error {
	sets := []string{"updated_at = now()"}
	args := []any{}

	appendSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		appendSet("name", *patch.Name)
	}
	if patch.Description != nil {
		appendSet("description", *patch.Description)
	}
	if patch.MaxPerUser != nil {
		appendSet("max_per_user", *patch.MaxPerUser)
	}
	if patch.Status != nil {
		appendSet("status", *patch.Status)
	}

	args = append(args, id)
	sql := fmt.Sprintf("UPDATE products SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete removes the product; codes and ledger rows go with it via ON DELETE
// CASCADE.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}
