package grid

import "caretrack/internal/core/domain"

// ViewState is the grid-owned view over one loaded page: sort column and
// direction, free-text filter, and scroll offset. It is derived state, never
// persisted, and is only ever written by the grid itself.
type ViewState struct {
	Column       Column
	Direction    Direction
	Query        string
	ScrollOffset float64
}

// Apply runs the filter-then-sort pipeline over the base dataset. Both
// stages are pure, so calling Apply never disturbs the input slice.
func (s ViewState) Apply(tasks []domain.Task, labels LabelSet) []domain.Task {
	return Sort(Filter(tasks, s.Query, labels), s.Column, s.Direction)
}

// CycleColumn advances the sort column through the displayed columns and
// back to unsorted, resetting the direction each time the column changes.
func (s ViewState) CycleColumn() ViewState {
	order := []Column{
		ColumnNone,
		ColumnPriority,
		ColumnStatus,
		ColumnTitle,
		ColumnPatient,
		ColumnAssignee,
		ColumnCategory,
		ColumnDueDate,
	}
	for i, c := range order {
		if c == s.Column {
			s.Column = order[(i+1)%len(order)]
			s.Direction = Ascending
			return s
		}
	}
	s.Column = order[0]
	s.Direction = Ascending
	return s
}

// ToggleDirection flips asc/desc; it has no effect while unsorted.
func (s ViewState) ToggleDirection() ViewState {
	if s.Column == ColumnNone {
		return s
	}
	if s.Direction == Ascending {
		s.Direction = Descending
	} else {
		s.Direction = Ascending
	}
	return s
}
