package response

import "codevend/internal/usecase/commands"

type DeliverResponse struct {
	Code  string `json:"code"`
	IsNew bool   `json:"is_new"`
	Count int    `json:"count"`
	Max   int    `json:"max"`
}

func FromDeliverResult(res *commands.DeliverResult) DeliverResponse {
	return DeliverResponse{
		Code:  res.Code,
		IsNew: res.IsNew,
		Count: res.Count,
		Max:   res.Max,
	}
}
