package request

type CreateProductRequest struct {
	ID          string  `json:"id" binding:"required,max=64"`
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description,omitempty"`
	MaxPerUser  *int    `json:"max_per_user,omitempty" binding:"omitempty,min=1"`
}

// UpdateProductRequest carries a partial update; absent fields stay unchanged.
type UpdateProductRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty"`
	MaxPerUser  *int    `json:"max_per_user,omitempty" binding:"omitempty,min=1"`
	Status      *string `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
}
