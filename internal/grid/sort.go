package grid

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"caretrack/internal/core/domain"
)

// Column identifies a sortable grid column.
type Column string

const (
	ColumnNone     Column = ""
	ColumnPriority Column = "priority"
	ColumnStatus   Column = "status"
	ColumnTitle    Column = "title"
	ColumnPatient  Column = "patient"
	ColumnAssignee Column = "assignedTo"
	ColumnCategory Column = "category"
	ColumnDueDate  Column = "dueDate"
)

type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Sort returns a sorted copy of tasks; the input slice is never reordered.
// The sort is stable: equal-key records keep their relative input order, and
// Descending inverts the comparator rather than reversing the result, so tie
// order is identical in both directions. ColumnNone returns the input as is.
func Sort(tasks []domain.Task, column Column, direction Direction) []domain.Task {
	cmp := comparatorFor(column)
	if cmp == nil {
		return tasks
	}

	out := make([]domain.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if direction == Descending {
			return c > 0
		}
		return c < 0
	})
	return out
}

func comparatorFor(column Column) func(a, b domain.Task) int {
	switch column {
	case ColumnPriority:
		return func(a, b domain.Task) int {
			return a.Priority.Rank() - b.Priority.Rank()
		}
	case ColumnPatient:
		// Composite "lastName firstName" key, collated so accented names
		// sit next to their unaccented spellings.
		coll := newCollator()
		return func(a, b domain.Task) int {
			return coll.CompareString(patientSortKey(a.Patient), patientSortKey(b.Patient))
		}
	case ColumnAssignee:
		coll := newCollator()
		return func(a, b domain.Task) int {
			return coll.CompareString(assigneeSortKey(a.AssignedTo), assigneeSortKey(b.AssignedTo))
		}
	case ColumnTitle:
		return func(a, b domain.Task) int {
			return strings.Compare(a.Title, b.Title)
		}
	case ColumnStatus:
		return func(a, b domain.Task) int {
			return strings.Compare(string(a.Status), string(b.Status))
		}
	case ColumnCategory:
		return func(a, b domain.Task) int {
			return strings.Compare(string(a.Category), string(b.Category))
		}
	case ColumnDueDate:
		return func(a, b domain.Task) int {
			switch {
			case a.DueDate.Before(b.DueDate):
				return -1
			case a.DueDate.After(b.DueDate):
				return 1
			default:
				return 0
			}
		}
	default:
		return nil
	}
}

// newCollator builds a fresh collator per sort; collators carry internal
// buffers and must not be shared.
func newCollator() *collate.Collator {
	return collate.New(language.French, collate.IgnoreCase)
}

func patientSortKey(p *domain.Patient) string {
	if p == nil {
		return ""
	}
	return strings.ToLower(p.LastName + " " + p.FirstName)
}

func assigneeSortKey(a *domain.Assignee) string {
	if a == nil {
		return ""
	}
	return a.Name
}
