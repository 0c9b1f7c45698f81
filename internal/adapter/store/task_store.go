package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"caretrack/internal/core/domain"
	"caretrack/internal/core/ports"
)

// TaskStore keeps the whole collection in memory, in insertion order. Every
// read hands out deep copies so callers can render or mutate freely without
// observing each other.
type TaskStore struct {
	mu    sync.RWMutex
	tasks []domain.Task

	now   func() time.Time
	newID func() string
}

var _ ports.TaskRepository = (*TaskStore)(nil)

func NewTaskStore() *TaskStore {
	return &TaskStore{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// Load replaces the whole collection, typically with seed data at startup.
func (s *TaskStore) Load(tasks []domain.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		s.tasks = append(s.tasks, cloneTask(t))
	}
}

func (s *TaskStore) List(_ context.Context, page, limit int) ([]domain.Task, domain.PaginationInfo, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	start := (page - 1) * limit
	end := start + limit
	if start > len(s.tasks) {
		start = len(s.tasks)
	}
	if end > len(s.tasks) {
		end = len(s.tasks)
	}

	out := make([]domain.Task, 0, end-start)
	for _, t := range s.tasks[start:end] {
		out = append(out, cloneTask(t))
	}
	return out, domain.NewPaginationInfo(page, limit, len(s.tasks)), nil
}

func (s *TaskStore) Get(_ context.Context, id string) (domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tasks {
		if t.ID == id {
			return cloneTask(t), nil
		}
	}
	return domain.Task{}, domain.ErrTaskNotFound
}

func (s *TaskStore) Create(_ context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	task := domain.Task{
		ID:          s.newID(),
		Title:       input.Title,
		Description: input.Description,
		Notes:       input.Notes,
		Priority:    input.Priority,
		Status:      input.Status,
		Category:    input.Category,
		DueDate:     input.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
		Patient:     clonePatient(input.Patient),
		AssignedTo:  cloneAssignee(input.AssignedTo),
	}
	s.tasks = append(s.tasks, task)
	return cloneTask(task), nil
}

func (s *TaskStore) Update(_ context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, t := range s.tasks {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	task := s.tasks[idx]
	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.DescriptionSet {
		task.Description = deref(input.Description)
	}
	if input.NotesSet {
		task.Notes = deref(input.Notes)
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.Category != nil {
		task.Category = *input.Category
	}
	if input.DueDate != nil {
		task.DueDate = *input.DueDate
	}
	if input.PatientSet {
		task.Patient = clonePatient(input.Patient)
	}
	if input.AssignedToSet {
		task.AssignedTo = cloneAssignee(input.AssignedTo)
	}
	// The id always wins over whatever the payload carried.
	task.ID = id
	task.UpdatedAt = s.now()

	s.tasks[idx] = task
	return cloneTask(task), nil
}

func (s *TaskStore) Delete(_ context.Context, id string) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return cloneTask(t), nil
		}
	}
	return domain.Task{}, domain.ErrTaskNotFound
}

// MatchField returns the tasks whose named scalar field equals value,
// compared case-insensitively. Only the known columns are addressable; there
// is deliberately no reflective lookup.
func (s *TaskStore) MatchField(_ context.Context, field, value string) ([]domain.Task, error) {
	selector, err := fieldSelector(field)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Task, 0)
	for _, t := range s.tasks {
		if strings.EqualFold(selector(t), value) {
			out = append(out, cloneTask(t))
		}
	}
	return out, nil
}

func (s *TaskStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks), nil
}

func fieldSelector(field string) (func(domain.Task) string, error) {
	switch field {
	case "id":
		return func(t domain.Task) string { return t.ID }, nil
	case "title":
		return func(t domain.Task) string { return t.Title }, nil
	case "priority":
		return func(t domain.Task) string { return string(t.Priority) }, nil
	case "status":
		return func(t domain.Task) string { return string(t.Status) }, nil
	case "category":
		return func(t domain.Task) string { return string(t.Category) }, nil
	default:
		return nil, domain.ErrUnknownField
	}
}

func cloneTask(t domain.Task) domain.Task {
	t.Patient = clonePatient(t.Patient)
	t.AssignedTo = cloneAssignee(t.AssignedTo)
	return t
}

func clonePatient(p *domain.Patient) *domain.Patient {
	if p == nil {
		return nil
	}
	value := *p
	return &value
}

func cloneAssignee(a *domain.Assignee) *domain.Assignee {
	if a == nil {
		return nil
	}
	value := *a
	return &value
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
