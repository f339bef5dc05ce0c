//go:build unit || e2e

package builder

import (
	"time"

	domproduct "codevend/internal/domain/product"
	reqdto "codevend/internal/handler/dto/request"
	"codevend/internal/usecase/commands"
	"codevend/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ProductBuilder struct {
	ID          string
	Name        string
	Description *string
	MaxPerUser  int
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewProductBuilder() *ProductBuilder {
	now := time.Now()
	desc := "Test product"
	return &ProductBuilder{
		ID:          "test-product",
		Name:        "Test Product",
		Description: &desc,
		MaxPerUser:  1,
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

// Clone returns an independent copy so variants of the same template can
// diverge without touching each other.
func (b *ProductBuilder) Clone() *ProductBuilder {
	var out ProductBuilder
	if err := copier.Copy(&out, b); err != nil {
		panic(err)
	}
	return &out
}

// Build methods
func (b *ProductBuilder) BuildDomain() (*domproduct.Product, error) {
	return domproduct.NewProduct(b.ID, b.Name, b.Description, b.MaxPerUser)
}

func (b *ProductBuilder) BuildCreateRequestDTO() reqdto.CreateProductRequest {
	maxPerUser := b.MaxPerUser
	return reqdto.CreateProductRequest{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		MaxPerUser:  &maxPerUser,
	}
}

func (b *ProductBuilder) BuildUpdateRequestDTO() reqdto.UpdateProductRequest {
	name := b.Name
	maxPerUser := b.MaxPerUser
	status := b.Status
	return reqdto.UpdateProductRequest{
		Name:        &name,
		Description: b.Description,
		MaxPerUser:  &maxPerUser,
		Status:      &status,
	}
}

func (b *ProductBuilder) BuildView() *queries.ProductView {
	return &queries.ProductView{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		MaxPerUser:  b.MaxPerUser,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *ProductBuilder) BuildSnapshot() commands.ProductSnapshot {
	return commands.ProductSnapshot{
		ID:         b.ID,
		MaxPerUser: b.MaxPerUser,
		Active:     b.Status == "active",
	}
}

// Fluent builder methods
func (b *ProductBuilder) WithID(id string) *ProductBuilder {
	b.ID = id
	return b
}

func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.Name = name
	return b
}

func (b *ProductBuilder) WithDescription(description *string) *ProductBuilder {
	b.Description = description
	return b
}

func (b *ProductBuilder) WithMaxPerUser(maxPerUser int) *ProductBuilder {
	b.MaxPerUser = maxPerUser
	return b
}

func (b *ProductBuilder) WithStatus(status string) *ProductBuilder {
	b.Status = status
	return b
}

func (b *ProductBuilder) AsInactive() *ProductBuilder {
	b.Status = "inactive"
	return b
}
