package response

import (
	"time"

	"codevend/internal/usecase/queries"
)

type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	MaxPerUser  int       `json:"max_per_user"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromProductView(view *queries.ProductView) ProductResponse {
	return ProductResponse{
		ID:          view.ID,
		Name:        view.Name,
		Description: view.Description,
		MaxPerUser:  view.MaxPerUser,
		Status:      view.Status,
		CreatedAt:   view.CreatedAt,
		UpdatedAt:   view.UpdatedAt,
	}
}

func FromProductList(views []*queries.ProductView) []ProductResponse {
	out := make([]ProductResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromProductView(v))
	}
	return out
}
