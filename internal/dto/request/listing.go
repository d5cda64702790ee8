package request

import (
	"movie-catalog/pkg/utils"
)

// ListRequest carries the catalog list query parameters: free-text
// search, sort field/order and pagination.
type ListRequest struct {
	Search  string `json:"search"`
	Genre   string `json:"genre"`
	Sort    string `json:"sort" validate:"omitempty,oneof=title rating"`
	Order   string `json:"order" validate:"omitempty,oneof=asc desc"`
	Page    int    `json:"page" validate:"min=1"`
	PerPage int    `json:"per_page" validate:"min=1,max=100"`
}

func (l ListRequest) Offset() int {
	return utils.CalculateOffset(l.Page, l.Limit())
}

func (l ListRequest) Limit() int {
	if l.PerPage < 1 {
		return 20
	}
	if l.PerPage > 100 {
		return 100
	}
	return l.PerPage
}
