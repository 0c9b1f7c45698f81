package grid

import "math"

// Window is the contiguous slice of rows to materialize plus the heights of
// the two spacer regions standing in for everything outside it. For any
// input, PaddingTop + renderedRowsHeight + PaddingBottom equals
// totalRows x rowHeight, which is what keeps scrollbar size and position
// correct while only a slice of rows exists.
type Window struct {
	Start         int
	End           int
	PaddingTop    float64
	PaddingBottom float64
}

// ComputeWindow maps viewport geometry onto the row list. scrollOffset is
// clamped before the range computation: when a filter shrinks the row set
// while the viewport is scrolled deep into the old one, the stale offset
// would otherwise push the window past the end of the list. The function is
// pure; identical inputs always produce identical output.
func ComputeWindow(totalRows int, viewportHeight, rowHeight, scrollOffset float64, overscan int) Window {
	if totalRows <= 0 || rowHeight <= 0 || viewportHeight <= 0 {
		return Window{}
	}
	if overscan < 0 {
		overscan = 0
	}

	scrollOffset = ClampOffset(totalRows, viewportHeight, rowHeight, scrollOffset)

	start := int(math.Floor(scrollOffset/rowHeight)) - overscan
	if start < 0 {
		start = 0
	}
	end := int(math.Ceil((scrollOffset+viewportHeight)/rowHeight)) + overscan
	if end > totalRows {
		end = totalRows
	}

	return Window{
		Start:         start,
		End:           end,
		PaddingTop:    float64(start) * rowHeight,
		PaddingBottom: float64(totalRows-end) * rowHeight,
	}
}

// ClampOffset bounds a scroll offset to the scrollable extent of totalRows.
func ClampOffset(totalRows int, viewportHeight, rowHeight, scrollOffset float64) float64 {
	maxOffset := float64(totalRows)*rowHeight - viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if scrollOffset > maxOffset {
		return maxOffset
	}
	if scrollOffset < 0 {
		return 0
	}
	return scrollOffset
}
