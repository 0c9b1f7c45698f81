package grid

import "caretrack/internal/core/domain"

// LabelSet carries the human-readable labels the grid shows for enum fields.
// Filtering matches against these labels, so the set the UI displays and the
// set the filter searches are always the same.
type LabelSet struct {
	Priority map[domain.Priority]string
	Status   map[domain.Status]string
	Category map[domain.Category]string
	Role     map[domain.Role]string
}

// DefaultLabels returns the English label set. The UI replaces it with a
// localized one built from the translation bundle.
func DefaultLabels() LabelSet {
	return LabelSet{
		Priority: map[domain.Priority]string{
			domain.PriorityLow:    "Low",
			domain.PriorityMedium: "Medium",
			domain.PriorityHigh:   "High",
		},
		Status: map[domain.Status]string{
			domain.StatusPending:    "Pending",
			domain.StatusInProgress: "In progress",
			domain.StatusCompleted:  "Completed",
			domain.StatusCancelled:  "Cancelled",
		},
		Category: map[domain.Category]string{
			domain.CategoryExamination:  "Examination",
			domain.CategorySurgery:      "Surgery",
			domain.CategoryMedication:   "Medication",
			domain.CategoryConsultation: "Consultation",
			domain.CategoryFollowUp:     "Follow-up",
		},
		Role: map[domain.Role]string{
			domain.RoleDoctor:     "Doctor",
			domain.RoleNurse:      "Nurse",
			domain.RoleSpecialist: "Specialist",
		},
	}
}

// Unknown enum values fall back to their raw string so the grid stays total
// over any record shape.

func (l LabelSet) PriorityLabel(p domain.Priority) string {
	if s, ok := l.Priority[p]; ok {
		return s
	}
	return string(p)
}

func (l LabelSet) StatusLabel(s domain.Status) string {
	if v, ok := l.Status[s]; ok {
		return v
	}
	return string(s)
}

func (l LabelSet) CategoryLabel(c domain.Category) string {
	if v, ok := l.Category[c]; ok {
		return v
	}
	return string(c)
}

func (l LabelSet) RoleLabel(r domain.Role) string {
	if v, ok := l.Role[r]; ok {
		return v
	}
	return string(r)
}
