package request

// GetCodeRequest asks the engine for the code the given user should use.
type GetCodeRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	User      string `json:"user" binding:"required"`
}
