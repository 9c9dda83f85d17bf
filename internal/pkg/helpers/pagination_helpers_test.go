package helpers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yigit/devcamper/internal/app/models/dto"
	"github.com/yigit/devcamper/internal/pkg/helpers"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
		total int64
		want  dto.Pagination
	}{
		{
			name: "single page", page: 1, limit: 10, total: 4,
			want: dto.Pagination{},
		},
		{
			name: "first of many", page: 1, limit: 2, total: 5,
			want: dto.Pagination{Next: &dto.PageLink{Page: 2, Limit: 2}},
		},
		{
			name: "middle", page: 2, limit: 2, total: 5,
			want: dto.Pagination{
				Next: &dto.PageLink{Page: 3, Limit: 2},
				Prev: &dto.PageLink{Page: 1, Limit: 2},
			},
		},
		{
			name: "last exactly full", page: 2, limit: 2, total: 4,
			want: dto.Pagination{Prev: &dto.PageLink{Page: 1, Limit: 2}},
		},
		{
			name: "past the end", page: 9, limit: 2, total: 4,
			want: dto.Pagination{Prev: &dto.PageLink{Page: 8, Limit: 2}},
		},
		{
			name: "empty", page: 1, limit: 1, total: 0,
			want: dto.Pagination{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, helpers.NewPagination(tt.page, tt.limit, tt.total))
		})
	}
}

func TestNewPaginationLargePage(t *testing.T) {
	const page = 1<<31 - 1

	p := helpers.NewPagination(page, 100, 10)
	assert.Nil(t, p.Next)
	assert.Equal(t, &dto.PageLink{Page: page - 1, Limit: 100}, p.Prev)
}
