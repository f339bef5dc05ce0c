package commands

import (
	"context"
	"time"

	"codevend/internal/domain/product"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type ProductSnapshot struct {
	ID         string
	MaxPerUser int
	Active     bool
}

type CodeSnapshot struct {
	ID         uuid.UUID
	ProductID  string
	Value      string
	Assigned   bool
	AssignedTo *string
}

// AssignParams is the unit of work for the atomic assign-and-record step:
// the conditional status flip and the ledger insert apply together or not at
// all. EnforceCap re-checks the ledger count inside the same transaction.
type AssignParams struct {
	CodeID     uuid.UUID
	ProductID  string
	User       string
	CodeValue  string
	AssignedAt time.Time
	EnforceCap bool
	MaxPerUser int
}

type ProductReader interface {
	Find(ctx context.Context, id string) (*ProductSnapshot, error)
}

type ProductRepository interface {
	Create(ctx context.Context, p *product.Product) error
	Update(ctx context.Context, id string, patch ProductPatch) error
	Delete(ctx context.Context, id string) error
}

// ProductPatch carries partial updates; nil fields are left untouched.
type ProductPatch struct {
	Name        *string
	Description *string
	MaxPerUser  *int
	Status      *string
}

type CodeRepository interface {
	// PickAvailable returns any available code for the product; the selection
	// policy is deliberately unspecified. KindNotFound means the pool is empty.
	PickAvailable(ctx context.Context, productID string) (*CodeSnapshot, error)
	// AssignAndRecord performs the conditional flip plus ledger insert in one
	// transaction. A lost race surfaces as KindConflict or KindDuplicateKey.
	AssignAndRecord(ctx context.Context, params AssignParams) error
	// BulkInsertIfAbsent inserts each value unless a code with that value
	// exists anywhere; returns how many were inserted vs skipped.
	BulkInsertIfAbsent(ctx context.Context, productID string, values []string) (inserted, duplicates int, err error)
	FindByID(ctx context.Context, id uuid.UUID) (*CodeSnapshot, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type DeliveryReader interface {
	// ListCodes returns the code values delivered to a user for a product, in
	// insertion order.
	ListCodes(ctx context.Context, productID, user string) ([]string, error)
}
