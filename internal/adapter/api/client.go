package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"caretrack/internal/adapter/http/dto"
	"caretrack/internal/core/domain"
	"caretrack/pkg/apierrors"
)

// Client talks to the task API over HTTP. It works on wire DTOs and converts
// them back to domain values so the rest of the program never sees JSON.
type Client struct {
	baseURL    string
	language   string
	httpClient *http.Client
}

func NewClient(baseURL, language string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   language,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) ListTasks(ctx context.Context, page, limit int) ([]domain.Task, domain.PaginationInfo, error) {
	var got dto.TaskPage
	path := fmt.Sprintf("/api/tasks?page=%d&limit=%d", page, limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &got); err != nil {
		return nil, domain.PaginationInfo{}, err
	}

	tasks := make([]domain.Task, 0, len(got.Tasks))
	for _, item := range got.Tasks {
		tasks = append(tasks, toDomainTask(item))
	}
	return tasks, domain.PaginationInfo{
		CurrentPage:     got.Pagination.CurrentPage,
		TotalPages:      got.Pagination.TotalPages,
		TotalRecords:    got.Pagination.TotalTasks,
		PageSize:        got.Pagination.TasksPerPage,
		HasNextPage:     got.Pagination.HasNextPage,
		HasPreviousPage: got.Pagination.HasPreviousPage,
	}, nil
}

func (c *Client) GetTask(ctx context.Context, id string) (domain.Task, error) {
	var got dto.TaskItem
	if err := c.do(ctx, http.MethodGet, "/api/tasks/"+id, nil, &got); err != nil {
		return domain.Task{}, err
	}
	return toDomainTask(got), nil
}

func (c *Client) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (domain.Task, error) {
	var got dto.TaskItem
	if err := c.do(ctx, http.MethodPost, "/api/tasks", req, &got); err != nil {
		return domain.Task{}, err
	}
	return toDomainTask(got), nil
}

func (c *Client) UpdateTask(ctx context.Context, id string, req dto.UpdateTaskRequest) (domain.Task, error) {
	var got dto.TaskItem
	if err := c.do(ctx, http.MethodPut, "/api/tasks/"+id, req, &got); err != nil {
		return domain.Task{}, err
	}
	return toDomainTask(got), nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) (domain.Task, error) {
	var got dto.TaskItem
	if err := c.do(ctx, http.MethodDelete, "/api/tasks/"+id, nil, &got); err != nil {
		return domain.Task{}, err
	}
	return toDomainTask(got), nil
}

func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	var got dto.SummarizeResponse
	if err := c.do(ctx, http.MethodPost, "/api/ai/summarize", dto.SummarizeRequest{Text: text}, &got); err != nil {
		return "", err
	}
	return got.Summary, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept-Language", c.language)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call task api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeError(resp *http.Response) error {
	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrTaskNotFound
	}

	var apiErr apierrors.JsonErr
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.ErrDetails.Message != "" {
		return apiErr
	}
	return fmt.Errorf("task api returned %d", resp.StatusCode)
}

func toDomainTask(item dto.TaskItem) domain.Task {
	task := domain.Task{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Notes:       item.Notes,
		Priority:    domain.Priority(item.Priority),
		Status:      domain.Status(item.Status),
		Category:    domain.Category(item.Category),
		DueDate:     parseWireTime(item.DueDate),
		CreatedAt:   parseWireTime(item.CreatedAt),
		UpdatedAt:   parseWireTime(item.UpdatedAt),
	}

	if item.Patient != nil {
		task.Patient = &domain.Patient{
			ID:          item.Patient.ID,
			FirstName:   item.Patient.FirstName,
			LastName:    item.Patient.LastName,
			DateOfBirth: parseWireTime(item.Patient.DateOfBirth),
			RoomNumber:  item.Patient.RoomNumber,
		}
	}
	if item.AssignedTo != nil {
		task.AssignedTo = &domain.Assignee{
			ID:   item.AssignedTo.ID,
			Name: item.AssignedTo.Name,
			Role: domain.Role(item.AssignedTo.Role),
		}
	}
	return task
}

func parseWireTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t
	}
	return time.Time{}
}
