package helpers

import (
	"github.com/yigit/devcamper/internal/app/models/dto"
)

// NewPagination builds the next/prev links of a page. next is set when rows
// remain past the window; prev when the window does not start at the first row.
// The window is computed in int64 so large pages cannot wrap.
func NewPagination(page, limit int, total int64) dto.Pagination {
	start := int64(page-1) * int64(limit)
	end := int64(page) * int64(limit)

	pagination := dto.Pagination{}
	if end < total {
		pagination.Next = &dto.PageLink{Page: page + 1, Limit: limit}
	}
	if start > 0 {
		pagination.Prev = &dto.PageLink{Page: page - 1, Limit: limit}
	}
	return pagination
}
