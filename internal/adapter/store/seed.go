package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"caretrack/internal/core/domain"
)

// taskDocument mirrors the JSON shape of the seed file, which is the same
// shape the API speaks on the wire.
type taskDocument struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Notes       string            `json:"notes,omitempty"`
	Priority    string            `json:"priority"`
	Status      string            `json:"status"`
	Category    string            `json:"category"`
	DueDate     string            `json:"dueDate"`
	CreatedAt   string            `json:"createdAt"`
	UpdatedAt   string            `json:"updatedAt"`
	Patient     *patientDocument  `json:"patient"`
	AssignedTo  *assigneeDocument `json:"assignedTo"`
}

type patientDocument struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	RoomNumber  string `json:"roomNumber"`
}

type assigneeDocument struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// LoadSeedFile reads a JSON array of task documents. Unparseable timestamps
// decode to the zero time rather than failing the whole load.
func LoadSeedFile(path string) ([]domain.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var docs []taskDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}

	tasks := make([]domain.Task, 0, len(docs))
	for _, doc := range docs {
		tasks = append(tasks, doc.toDomain())
	}
	return tasks, nil
}

func (d taskDocument) toDomain() domain.Task {
	task := domain.Task{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Notes:       d.Notes,
		Priority:    domain.Priority(d.Priority),
		Status:      domain.Status(d.Status),
		Category:    domain.Category(d.Category),
		DueDate:     parseSeedTime(d.DueDate),
		CreatedAt:   parseSeedTime(d.CreatedAt),
		UpdatedAt:   parseSeedTime(d.UpdatedAt),
	}
	if d.Patient != nil {
		task.Patient = &domain.Patient{
			ID:          d.Patient.ID,
			FirstName:   d.Patient.FirstName,
			LastName:    d.Patient.LastName,
			DateOfBirth: parseSeedTime(d.Patient.DateOfBirth),
			RoomNumber:  d.Patient.RoomNumber,
		}
	}
	if d.AssignedTo != nil {
		task.AssignedTo = &domain.Assignee{
			ID:   d.AssignedTo.ID,
			Name: d.AssignedTo.Name,
			Role: domain.Role(d.AssignedTo.Role),
		}
	}
	return task
}

func parseSeedTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts
	}
	if ts, err := time.Parse("2006-01-02", value); err == nil {
		return ts
	}
	return time.Time{}
}
