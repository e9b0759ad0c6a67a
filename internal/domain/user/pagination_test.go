package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name           string
		total          int64
		page           int64
		pageSize       int64
		wantTotalPages int64
	}{
		{"exact multiple", 10, 1, 5, 2},
		{"partial last page", 3, 2, 2, 2},
		{"empty collection", 0, 1, 10, 0},
		{"single user", 1, 1, 10, 1},
		{"page size one", 7, 3, 1, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.total, tt.page, tt.pageSize)
			assert.Equal(t, tt.total, p.TotalUsers)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.pageSize, p.PageSize)
			assert.Equal(t, tt.wantTotalPages, p.TotalPages)
		})
	}
}
