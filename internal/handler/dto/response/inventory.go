package response

import "codevend/internal/usecase/queries"

type InventoryResponse struct {
	ProductID string `json:"product_id"`
	Available int64  `json:"available"`
	Assigned  int64  `json:"assigned"`
}

func FromInventoryView(productID string, view *queries.InventoryView) InventoryResponse {
	return InventoryResponse{
		ProductID: productID,
		Available: view.Available,
		Assigned:  view.Assigned,
	}
}
