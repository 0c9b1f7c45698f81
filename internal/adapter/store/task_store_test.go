package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"caretrack/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, n int) *TaskStore {
	t.Helper()

	s := NewTaskStore()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	tasks := make([]domain.Task, 0, n)
	for i := 0; i < n; i++ {
		tasks = append(tasks, domain.Task{
			ID:        idFor(i),
			Title:     "Task " + idFor(i),
			Priority:  domain.PriorityMedium,
			Status:    domain.StatusPending,
			Category:  domain.CategoryExamination,
			CreatedAt: base,
			UpdatedAt: base,
		})
	}
	s.Load(tasks)
	return s
}

func idFor(i int) string {
	return string(rune('a' + i%26))
}

func TestTaskStore_ListSlicesPageWindow(t *testing.T) {
	s := newTestStore(t, 7)

	tasks, p, err := s.List(context.Background(), 2, 3)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "Task d", tasks[0].Title)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 7, p.TotalRecords)
	assert.True(t, p.HasNextPage)
	assert.True(t, p.HasPreviousPage)
}

func TestTaskStore_ListBeyondEndIsEmpty(t *testing.T) {
	s := newTestStore(t, 3)

	tasks, p, err := s.List(context.Background(), 5, 10)
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.Equal(t, 3, p.TotalRecords)
	assert.False(t, p.HasNextPage)
}

func TestTaskStore_ListReturnsCopies(t *testing.T) {
	s := NewTaskStore()
	s.Load([]domain.Task{{
		ID:      "x",
		Patient: &domain.Patient{FirstName: "Claire"},
	}})

	tasks, _, err := s.List(context.Background(), 1, 10)
	require.NoError(t, err)
	tasks[0].Patient.FirstName = "changed"

	stored, err := s.Get(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "Claire", stored.Patient.FirstName)
}

func TestTaskStore_GetNotFound(t *testing.T) {
	s := newTestStore(t, 1)

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTaskStore_CreateAssignsIdentityAndTimestamps(t *testing.T) {
	s := NewTaskStore()
	created := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return created }
	s.newID = func() string { return "fixed-id" }

	task, err := s.Create(context.Background(), domain.CreateTaskInput{
		Title:    "New admission workup",
		Priority: domain.PriorityHigh,
		Status:   domain.StatusPending,
		Category: domain.CategoryExamination,
	})
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", task.ID)
	assert.Equal(t, created, task.CreatedAt)
	assert.Equal(t, created, task.UpdatedAt)

	count, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestTaskStore_UpdateMergesPartialInput(t *testing.T) {
	s := newTestStore(t, 2)
	updated := time.Date(2026, 3, 6, 15, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return updated }

	title := "Renamed"
	status := domain.StatusCompleted
	task, err := s.Update(context.Background(), "b", domain.UpdateTaskInput{
		Title:  &title,
		Status: &status,
	})
	require.NoError(t, err)

	assert.Equal(t, "b", task.ID)
	assert.Equal(t, "Renamed", task.Title)
	assert.Equal(t, domain.StatusCompleted, task.Status)
	// Untouched fields survive the merge.
	assert.Equal(t, domain.PriorityMedium, task.Priority)
	assert.Equal(t, updated, task.UpdatedAt)
	assert.True(t, task.UpdatedAt.After(task.CreatedAt))
}

func TestTaskStore_UpdateClearsFieldsViaSetFlags(t *testing.T) {
	s := NewTaskStore()
	s.Load([]domain.Task{{
		ID:    "x",
		Notes: "old notes",
	}})

	task, err := s.Update(context.Background(), "x", domain.UpdateTaskInput{NotesSet: true})
	require.NoError(t, err)
	assert.Empty(t, task.Notes)
}

func TestTaskStore_UpdateNotFound(t *testing.T) {
	s := newTestStore(t, 1)

	_, err := s.Update(context.Background(), "missing", domain.UpdateTaskInput{})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTaskStore_DeleteReturnsRemovedRecord(t *testing.T) {
	s := newTestStore(t, 3)

	task, err := s.Delete(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, "b", task.ID)

	_, err = s.Get(context.Background(), "b")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	count, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestTaskStore_MatchField(t *testing.T) {
	s := NewTaskStore()
	s.Load([]domain.Task{
		{ID: "1", Priority: domain.PriorityHigh},
		{ID: "2", Priority: domain.PriorityLow},
		{ID: "3", Priority: domain.PriorityHigh},
	})

	tasks, err := s.MatchField(context.Background(), "priority", "HIGH")
	require.NoError(t, err)
	assert.Len(t, tasks, 2)

	_, err = s.MatchField(context.Background(), "roomNumber", "304")
	assert.ErrorIs(t, err, domain.ErrUnknownField)
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join("testdata", "tasks.json")

	tasks, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	first := tasks[0]
	assert.Equal(t, "seed-1", first.ID)
	assert.Equal(t, domain.PriorityHigh, first.Priority)
	require.NotNil(t, first.Patient)
	assert.Equal(t, "Moreau", first.Patient.LastName)
	require.NotNil(t, first.AssignedTo)
	assert.Equal(t, domain.RoleNurse, first.AssignedTo.Role)
	assert.Equal(t, 2026, first.DueDate.Year())

	// The second record has no patient and a date-only due date.
	second := tasks[1]
	assert.Nil(t, second.Patient)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), second.DueDate)
}

func TestLoadSeedFile_MissingFile(t *testing.T) {
	_, err := LoadSeedFile(filepath.Join("testdata", "absent.json"))
	assert.Error(t, err)
}
