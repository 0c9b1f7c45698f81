package grid

import (
	"strings"

	"caretrack/internal/core/domain"
)

// Filter returns the tasks whose projected text fields contain query,
// case-insensitively and order-preserving. A blank query returns the input
// slice unchanged. Whitespace inside a non-blank query is significant and
// must appear in the matched field.
func Filter(tasks []domain.Task, query string, labels LabelSet) []domain.Task {
	if strings.TrimSpace(query) == "" {
		return tasks
	}
	q := strings.ToLower(query)

	out := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if matchesQuery(task, q, labels) {
			out = append(out, task)
		}
	}
	return out
}

// matchesQuery checks the projected fields in a fixed order and returns at
// the first hit, so the long description body is only scanned when the
// cheaper fields all miss. Absent sub-records project as empty strings.
func matchesQuery(task domain.Task, q string, labels LabelSet) bool {
	if containsFold(task.Title, q) {
		return true
	}

	var patientName, room string
	if task.Patient != nil {
		patientName = task.Patient.FirstName + " " + task.Patient.LastName
		room = task.Patient.RoomNumber
	}
	if containsFold(patientName, q) {
		return true
	}
	if containsFold(room, q) {
		return true
	}

	var assignee string
	if task.AssignedTo != nil {
		assignee = task.AssignedTo.Name
	}
	if containsFold(assignee, q) {
		return true
	}

	if containsFold(task.Description, q) {
		return true
	}
	if containsFold(labels.CategoryLabel(task.Category), q) {
		return true
	}
	if containsFold(labels.StatusLabel(task.Status), q) {
		return true
	}
	return containsFold(labels.PriorityLabel(task.Priority), q)
}

// containsFold assumes q is already lowercased.
func containsFold(s, q string) bool {
	return strings.Contains(strings.ToLower(s), q)
}
