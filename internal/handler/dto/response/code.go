package response

import (
	"time"

	"codevend/internal/usecase/commands"
	"codevend/internal/usecase/queries"

	"github.com/google/uuid"
)

type CodeResponse struct {
	ID         uuid.UUID  `json:"id"`
	ProductID  string     `json:"product_id"`
	Value      string     `json:"value"`
	Status     string     `json:"status"`
	AssignedTo *string    `json:"assigned_to,omitempty"`
	AssignedAt *time.Time `json:"assigned_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func FromCodeView(view *queries.CodeView) CodeResponse {
	return CodeResponse{
		ID:         view.ID,
		ProductID:  view.ProductID,
		Value:      view.Value,
		Status:     view.Status,
		AssignedTo: view.AssignedTo,
		AssignedAt: view.AssignedAt,
		CreatedAt:  view.CreatedAt,
	}
}

func FromCodeList(views []*queries.CodeView) []CodeResponse {
	out := make([]CodeResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromCodeView(v))
	}
	return out
}

type UploadCodesResponse struct {
	Inserted   int `json:"inserted"`
	Duplicates int `json:"duplicates"`
}

func FromLoadResult(res *commands.LoadResult) UploadCodesResponse {
	return UploadCodesResponse{
		Inserted:   res.Inserted,
		Duplicates: res.Duplicates,
	}
}

type AssignCodeResponse struct {
	Code string `json:"code"`
}
