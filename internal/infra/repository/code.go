package repository

import (
	"context"
	"log/slog"

	"codevend/internal/infra"
	"codevend/internal/pkg/pgconv"
	"codevend/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CodeRepository struct {
	pool *pgxpool.Pool
}

func NewCodeRepository(pool *pgxpool.Pool) *CodeRepository {
	return &CodeRepository{pool: pool}
}

// PickAvailable selects any available code for the product. No ORDER BY on
// purpose: the selection policy is unspecified and callers must not rely on
// FIFO.
func (r *CodeRepository) PickAvailable(ctx context.Context, productID string) (*commands.CodeSnapshot, error) {
	const sql = `
SELECT id, value
  FROM codes
 WHERE product_id = $1 AND status = 'available'
 LIMIT 1
`
	var snap commands.CodeSnapshot
	if err := r.pool.QueryRow(ctx, sql, productID).Scan(&snap.ID, &snap.Value); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no available code", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to pick available code", err)
	}
	snap.ProductID = productID
	return &snap, nil
}

// AssignAndRecord flips the code to assigned and appends the delivery ledger
// row in one transaction. The UPDATE is conditioned on the code still being
// available; zero affected rows means another caller won the race, as does a
// uniqueness violation on the ledger insert. Both roll everything back.
func (r *CodeRepository) AssignAndRecord(ctx context.Context, params commands.AssignParams) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && rollbackErr != pgx.ErrTxClosed {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if params.EnforceCap {
		var count int
		err = tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM deliveries WHERE product_id = $1 AND user_ref = $2`,
			params.ProductID, params.User,
		).Scan(&count)
		if err != nil {
			return infra.WrapRepoErr("failed to recount deliveries", err)
		}
		if count >= params.MaxPerUser {
			return infra.WrapRepoErr("per-user cap reached inside transaction", nil, infra.KindConflict)
		}
	}

	tag, err := tx.Exec(ctx, `
UPDATE codes
   SET status = 'assigned', assigned_to = $1, assigned_at = $2
 WHERE id = $3 AND status = 'available'
`, params.User, params.AssignedAt, params.CodeID)
	if err != nil {
		return infra.WrapRepoErr("failed to assign code", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("code no longer available", nil, infra.KindConflict)
	}

	_, err = tx.Exec(ctx, `
INSERT INTO deliveries (product_id, user_ref, code_value, created_at)
VALUES ($1, $2, $3, $4)
`, params.ProductID, params.User, params.CodeValue, params.AssignedAt)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("delivery already recorded", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to record delivery", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit assignment", err)
	}
	return nil
}

// BulkInsertIfAbsent inserts the values as available codes, skipping any value
// that already exists anywhere (the value column is globally unique). The
// statements run in one batched transaction; ON CONFLICT DO NOTHING makes each
// insert independent, and a repeat within the input loses to its own first
// occurrence.
func (r *CodeRepository) BulkInsertIfAbsent(ctx context.Context, productID string, values []string) (int, int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, 0, infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && rollbackErr != pgx.ErrTxClosed {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	batch := &pgx.Batch{}
	for _, value := range values {
		batch.Queue(`
INSERT INTO codes (id, product_id, value, status)
VALUES ($1, $2, $3, 'available')
ON CONFLICT (value) DO NOTHING
`, uuid.New(), productID, value)
	}

	results := tx.SendBatch(ctx, batch)

	inserted, duplicates := 0, 0
	for range values {
		tag, execErr := results.Exec()
		if execErr != nil {
			_ = results.Close()
			return 0, 0, infra.WrapRepoErr("failed to insert code batch", execErr)
		}
		if tag.RowsAffected() > 0 {
			inserted++
		} else {
			duplicates++
		}
	}
	if err := results.Close(); err != nil {
		return 0, 0, infra.WrapRepoErr("failed to close code batch", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, 0, infra.WrapRepoErr("failed to commit code batch", err)
	}
	return inserted, duplicates, nil
}

func (r *CodeRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.CodeSnapshot, error) {
	const sql = `
SELECT id, product_id, value, status, assigned_to
  FROM codes
 WHERE id = $1
`
	var (
		snap       commands.CodeSnapshot
		status     string
		assignedTo *string
	)
	if err := r.pool.QueryRow(ctx, sql, id).Scan(&snap.ID, &snap.ProductID, &snap.Value, &status, &assignedTo); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find code by ID", err)
	}
	snap.Assigned = status == "assigned"
	snap.AssignedTo = assignedTo
	return &snap, nil
}

func (r *CodeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM codes WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete code", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("code not found", nil, infra.KindNotFound)
	}
	return nil
}
