package grid

import "caretrack/internal/core/domain"

const pageWindowSize = 5

// PageWindow returns the contiguous run of page numbers to offer as buttons:
// at most five, centered on currentPage and clamped to [1, totalPages].
func PageWindow(currentPage, totalPages int) []int {
	if totalPages < 1 {
		return nil
	}

	count := pageWindowSize
	if totalPages < count {
		count = totalPages
	}

	first := 1
	switch {
	case totalPages <= pageWindowSize:
		first = 1
	case currentPage <= 3:
		first = 1
	case currentPage >= totalPages-2:
		first = totalPages - pageWindowSize + 1
	default:
		first = currentPage - 2
	}

	pages := make([]int, count)
	for i := range pages {
		pages[i] = first + i
	}
	return pages
}

// DisplayedRange returns the 1-based bounds of the records the current page
// covers, for the "X to Y of Z" readout. An empty collection yields 0, 0.
func DisplayedRange(p domain.PaginationInfo) (start, end int) {
	if p.TotalRecords == 0 {
		return 0, 0
	}
	start = (p.CurrentPage-1)*p.PageSize + 1
	end = p.CurrentPage * p.PageSize
	if end > p.TotalRecords {
		end = p.TotalRecords
	}
	return start, end
}
