package request

// UploadCodesRequest loads a batch of candidate code strings into a product's
// pool.
type UploadCodesRequest struct {
	ProductID string   `json:"product_id" binding:"required"`
	Codes     []string `json:"codes" binding:"required,min=1,dive,required,max=512"`
}

// AdminUploadCodesRequest is the admin variant; the product comes from the path.
type AdminUploadCodesRequest struct {
	Codes []string `json:"codes" binding:"required,min=1,dive,required,max=512"`
}

// AssignCodeRequest hands a specific code to a user, bypassing the per-user cap.
type AssignCodeRequest struct {
	User string `json:"user" binding:"required"`
}
