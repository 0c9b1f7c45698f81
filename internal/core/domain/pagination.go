package domain

// PaginationInfo describes one page window over the full collection. It is
// recomputed fresh on every fetch and replaced wholesale, never mutated.
type PaginationInfo struct {
	CurrentPage     int
	TotalPages      int
	TotalRecords    int
	PageSize        int
	HasNextPage     bool
	HasPreviousPage bool
}

func NewPaginationInfo(page, pageSize, totalRecords int) PaginationInfo {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := (totalRecords + pageSize - 1) / pageSize

	return PaginationInfo{
		CurrentPage:     page,
		TotalPages:      totalPages,
		TotalRecords:    totalRecords,
		PageSize:        pageSize,
		HasNextPage:     page*pageSize < totalRecords,
		HasPreviousPage: page > 1,
	}
}
