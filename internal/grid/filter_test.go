package grid_test

import (
	"testing"
	"time"

	"caretrack/internal/core/domain"
	"caretrack/internal/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTask() domain.Task {
	return domain.Task{
		ID:          "t-1",
		Title:       "Morning blood draw",
		Description: "Fasting sample before rounds",
		Priority:    domain.PriorityHigh,
		Status:      domain.StatusPending,
		Category:    domain.CategoryExamination,
		DueDate:     time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
		Patient: &domain.Patient{
			ID:         "p-1",
			FirstName:  "Claire",
			LastName:   "Moreau",
			RoomNumber: "304B",
		},
		AssignedTo: &domain.Assignee{
			ID:   "s-1",
			Name: "Dr. Lefevre",
			Role: domain.RoleDoctor,
		},
	}
}

func TestFilter_BlankQueryIsIdentity(t *testing.T) {
	tasks := []domain.Task{sampleTask(), {ID: "t-2", Title: "Other"}}

	assert.Equal(t, tasks, grid.Filter(tasks, "", grid.DefaultLabels()))
	assert.Equal(t, tasks, grid.Filter(tasks, "   ", grid.DefaultLabels()))
}

func TestFilter_MatchesEachProjectedField(t *testing.T) {
	labels := grid.DefaultLabels()
	task := sampleTask()

	queries := map[string]string{
		"title":          "blood draw",
		"patient name":   "claire moreau",
		"room":           "304b",
		"assignee":       "lefevre",
		"description":    "fasting",
		"category label": "examination",
		"status label":   "pending",
		"priority label": "high",
	}
	for field, q := range queries {
		got := grid.Filter([]domain.Task{task}, q, labels)
		require.Len(t, got, 1, "expected a match on %s", field)
	}
}

func TestFilter_WhitespaceInQueryIsSignificant(t *testing.T) {
	labels := grid.DefaultLabels()
	task := sampleTask()

	// Padding around the query must appear in the field too.
	assert.Empty(t, grid.Filter([]domain.Task{task}, " 304b ", labels))
	// Inner whitespace matches across the composite patient name.
	assert.Len(t, grid.Filter([]domain.Task{task}, "claire m", labels), 1)
}

func TestFilter_CaseInsensitive(t *testing.T) {
	got := grid.Filter([]domain.Task{sampleTask()}, "MOREAU", grid.DefaultLabels())
	assert.Len(t, got, 1)
}

func TestFilter_NoMatch(t *testing.T) {
	got := grid.Filter([]domain.Task{sampleTask()}, "radiology", grid.DefaultLabels())
	assert.Empty(t, got)
}

func TestFilter_AbsentPatientProjectsEmpty(t *testing.T) {
	task := sampleTask()
	task.Patient = nil
	task.AssignedTo = nil

	assert.Empty(t, grid.Filter([]domain.Task{task}, "moreau", grid.DefaultLabels()))
	// Other fields still match.
	assert.Len(t, grid.Filter([]domain.Task{task}, "blood", grid.DefaultLabels()), 1)
}

func TestFilter_UnknownEnumFallsBackToRawValue(t *testing.T) {
	task := sampleTask()
	task.Priority = domain.Priority("stat")

	got := grid.Filter([]domain.Task{task}, "stat", grid.DefaultLabels())
	assert.Len(t, got, 1)
}

func TestFilter_PreservesOrder(t *testing.T) {
	a, b, c := sampleTask(), sampleTask(), sampleTask()
	a.ID, b.ID, c.ID = "a", "b", "c"
	b.Title = "Discharge paperwork"

	got := grid.Filter([]domain.Task{a, b, c}, "blood", grid.DefaultLabels())
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}
