package queries

import (
	"time"

	"github.com/google/uuid"
)

// ProductView represents read-optimized product data
type ProductView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	MaxPerUser  int       `json:"max_per_user"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CodeView represents read-optimized code data
type CodeView struct {
	ID         uuid.UUID  `json:"id"`
	ProductID  string     `json:"product_id"`
	Value      string     `json:"value"`
	Status     string     `json:"status"`
	AssignedTo *string    `json:"assigned_to,omitempty"`
	AssignedAt *time.Time `json:"assigned_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// InventoryView is a point-in-time aggregate of a product's pool; it is a
// snapshot, not a guarantee against concurrent changes after the read.
type InventoryView struct {
	Available int64 `json:"available"`
	Assigned  int64 `json:"assigned"`
}

const (
	DefaultCodeListLimit = 100
	MaxCodeListLimit     = 100
)

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultCodeListLimit
	}
	if limit > MaxCodeListLimit {
		return MaxCodeListLimit
	}
	return limit
}
