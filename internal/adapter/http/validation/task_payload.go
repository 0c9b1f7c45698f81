package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"caretrack/internal/adapter/http/dto"
	"caretrack/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	if hasJSONField(raw, "priority") && req.Priority == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	if hasJSONField(raw, "category") && req.Category == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	priority := domain.PriorityMedium
	if req.Priority != nil {
		priority = domain.Priority(*req.Priority)
	}

	status := domain.StatusPending
	if req.Status != nil {
		status = domain.Status(*req.Status)
	}

	category := domain.CategoryExamination
	if req.Category != nil {
		category = domain.Category(*req.Category)
	}

	var dueDate time.Time
	if req.DueDate != nil {
		parsed, err := parseDate(*req.DueDate)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		dueDate = parsed
	}

	patient, err := buildPatient(req.Patient)
	if err != nil {
		return domain.CreateTaskInput{}, err
	}

	return domain.CreateTaskInput{
		Title:       title,
		Description: deref(req.Description),
		Notes:       deref(req.Notes),
		Priority:    priority,
		Status:      status,
		Category:    category,
		DueDate:     dueDate,
		Patient:     patient,
		AssignedTo:  buildAssignee(req.AssignedTo),
	}, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var title *string
	if hasJSONField(raw, "title") && req.Title == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		title = &value
	}

	var priority *domain.Priority
	if hasJSONField(raw, "priority") && req.Priority == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Priority != nil {
		value := domain.Priority(*req.Priority)
		priority = &value
	}

	var status *domain.Status
	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Status != nil {
		value := domain.Status(*req.Status)
		status = &value
	}

	var category *domain.Category
	if hasJSONField(raw, "category") && req.Category == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Category != nil {
		value := domain.Category(*req.Category)
		category = &value
	}

	descriptionSet := hasJSONField(raw, "description")
	if descriptionSet && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	notesSet := hasJSONField(raw, "notes")
	if notesSet && !isJSONNull(raw["notes"]) && req.Notes == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var dueDate *time.Time
	if hasJSONField(raw, "dueDate") && !isJSONNull(raw["dueDate"]) {
		if req.DueDate == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		parsed, err := parseDate(*req.DueDate)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		dueDate = &parsed
	}

	patientSet := hasJSONField(raw, "patient")
	var patient *domain.Patient
	if patientSet && !isJSONNull(raw["patient"]) {
		if req.Patient == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		built, err := buildPatient(req.Patient)
		if err != nil {
			return domain.UpdateTaskInput{}, err
		}
		patient = built
	}

	assignedToSet := hasJSONField(raw, "assignedTo")
	var assignedTo *domain.Assignee
	if assignedToSet && !isJSONNull(raw["assignedTo"]) {
		if req.AssignedTo == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		assignedTo = buildAssignee(req.AssignedTo)
	}

	return domain.UpdateTaskInput{
		Title:          title,
		Description:    req.Description,
		DescriptionSet: descriptionSet,
		Notes:          req.Notes,
		NotesSet:       notesSet,
		Priority:       priority,
		Status:         status,
		Category:       category,
		DueDate:        dueDate,
		Patient:        patient,
		PatientSet:     patientSet,
		AssignedTo:     assignedTo,
		AssignedToSet:  assignedToSet,
	}, nil
}

func buildPatient(payload *dto.PatientPayload) (*domain.Patient, error) {
	if payload == nil {
		return nil, nil
	}

	patient := &domain.Patient{
		ID:        deref(payload.ID),
		FirstName: strings.TrimSpace(payload.FirstName),
		LastName:  strings.TrimSpace(payload.LastName),
	}
	if patient.FirstName == "" || patient.LastName == "" {
		return nil, ErrInvalidTaskPayload
	}
	if patient.ID == "" {
		patient.ID = strings.ToLower(patient.LastName) + "-" + strings.ToLower(patient.FirstName)
	}
	if payload.RoomNumber != nil {
		patient.RoomNumber = *payload.RoomNumber
	}
	if payload.DateOfBirth != nil {
		parsed, err := parseDate(*payload.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidTaskPayload
		}
		patient.DateOfBirth = parsed
	}
	return patient, nil
}

func buildAssignee(payload *dto.AssigneePayload) *domain.Assignee {
	if payload == nil {
		return nil
	}

	assignee := &domain.Assignee{
		ID:   deref(payload.ID),
		Name: strings.TrimSpace(payload.Name),
		Role: domain.Role(payload.Role),
	}
	if assignee.ID == "" {
		assignee.ID = strings.ToLower(strings.ReplaceAll(assignee.Name, " ", "-"))
	}
	return assignee
}

// parseDate accepts full RFC3339 timestamps and bare dates, the two shapes
// clients actually send.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "notes") ||
		hasJSONField(raw, "priority") ||
		hasJSONField(raw, "status") ||
		hasJSONField(raw, "category") ||
		hasJSONField(raw, "dueDate") ||
		hasJSONField(raw, "patient") ||
		hasJSONField(raw, "assignedTo")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
