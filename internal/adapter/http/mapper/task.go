package mapper

import (
	"time"

	"caretrack/internal/adapter/http/dto"
	"caretrack/internal/core/domain"
)

func ToTaskPage(tasks []domain.Task, pagination domain.PaginationInfo) dto.TaskPage {
	return dto.TaskPage{
		Tasks:      ToTaskItems(tasks),
		Pagination: ToPagination(pagination),
	}
}

func ToPagination(p domain.PaginationInfo) dto.Pagination {
	return dto.Pagination{
		CurrentPage:     p.CurrentPage,
		TotalPages:      p.TotalPages,
		TotalTasks:      p.TotalRecords,
		TasksPerPage:    p.PageSize,
		HasNextPage:     p.HasNextPage,
		HasPreviousPage: p.HasPreviousPage,
	}
}

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Notes:       task.Notes,
		Priority:    string(task.Priority),
		Status:      string(task.Status),
		Category:    string(task.Category),
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}

	if !task.DueDate.IsZero() {
		item.DueDate = task.DueDate.Format(time.RFC3339)
	}

	if task.Patient != nil {
		item.Patient = ToPatientItem(task.Patient)
	}

	if task.AssignedTo != nil {
		item.AssignedTo = &dto.AssigneeItem{
			ID:   task.AssignedTo.ID,
			Name: task.AssignedTo.Name,
			Role: string(task.AssignedTo.Role),
		}
	}

	return item
}

func ToPatientItem(patient *domain.Patient) *dto.PatientItem {
	item := &dto.PatientItem{
		ID:         patient.ID,
		FirstName:  patient.FirstName,
		LastName:   patient.LastName,
		RoomNumber: patient.RoomNumber,
	}
	if !patient.DateOfBirth.IsZero() {
		item.DateOfBirth = patient.DateOfBirth.Format("2006-01-02")
	}
	return item
}
