package user

// Pagination represents pagination information for list responses.
type Pagination struct {
	TotalUsers int64 // Total number of users in the store
	Page       int64 // Current page number (1-based)
	PageSize   int64 // Number of users per page
	TotalPages int64 // Total number of pages
}

// NewPagination creates a new Pagination instance with calculated total pages.
func NewPagination(total, page, pageSize int64) *Pagination {
	var totalPages int64
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	return &Pagination{
		TotalUsers: total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
