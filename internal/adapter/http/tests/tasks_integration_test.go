package tests

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "caretrack/internal/adapter/http"
	"caretrack/internal/adapter/http/dto"
	"caretrack/internal/adapter/http/handlers"
	"caretrack/internal/adapter/store"
	appservice "caretrack/internal/app/service"
	"caretrack/internal/core/domain"
	"caretrack/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"golang.org/x/time/rate"
)

type notConfiguredSummarizer struct{}

func (notConfiguredSummarizer) Summarize(_ context.Context, _ string) (string, error) {
	return "", domain.ErrAINotReady
}

type TasksIntegrationSuite struct {
	suite.Suite

	store  *store.TaskStore
	router *gin.Engine
}

func TestTasksIntegrationSuite(t *testing.T) {
	suite.Run(t, new(TasksIntegrationSuite))
}

func (s *TasksIntegrationSuite) SetupTest() {
	s.store = store.NewTaskStore()
	s.store.Load(seedTasks(301))

	taskService := appservice.NewTaskService(s.store)
	healthHandler := handlers.NewHealthHandler(taskService)
	taskHandler := handlers.NewTaskHandler(taskService)
	aiHandler := handlers.NewAIHandler(notConfiguredSummarizer{})

	router := gin.New()
	httpadapter.RegisterRoutes(router, healthHandler, taskHandler, aiHandler, rate.NewLimiter(rate.Inf, 1))
	s.router = router
}

func seedTasks(n int) []domain.Task {
	created := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	tasks := make([]domain.Task, 0, n)
	for i := 0; i < n; i++ {
		tasks = append(tasks, domain.Task{
			ID:        fmt.Sprintf("task-%03d", i),
			Title:     fmt.Sprintf("Tâche %03d", i),
			Priority:  domain.PriorityMedium,
			Status:    domain.StatusPending,
			Category:  domain.CategoryExamination,
			CreatedAt: created,
			UpdatedAt: created,
			Patient: &domain.Patient{
				ID:         fmt.Sprintf("patient-%03d", i),
				FirstName:  "Jean",
				LastName:   fmt.Sprintf("Nom%03d", i),
				RoomNumber: fmt.Sprintf("%d", 100+i),
			},
		})
	}
	return tasks
}

func (s *TasksIntegrationSuite) getPage(query string) dto.TaskPage {
	req := httptest.NewRequest(http.MethodGet, "/api/tasks"+query, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code)

	var got dto.TaskPage
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}

func (s *TasksIntegrationSuite) TestGetTasks_DefaultPageSize() {
	got := s.getPage("")

	s.Require().Len(got.Tasks, 150)
	s.Require().Equal(1, got.Pagination.CurrentPage)
	s.Require().Equal(3, got.Pagination.TotalPages)
	s.Require().Equal(301, got.Pagination.TotalTasks)
	s.Require().Equal(150, got.Pagination.TasksPerPage)
	s.Require().True(got.Pagination.HasNextPage)
	s.Require().False(got.Pagination.HasPreviousPage)
	s.Require().Equal("task-000", got.Tasks[0].ID)
}

func (s *TasksIntegrationSuite) TestGetTasks_LastPageIsShort() {
	got := s.getPage("?page=3")

	s.Require().Len(got.Tasks, 1)
	s.Require().Equal("task-300", got.Tasks[0].ID)
	s.Require().False(got.Pagination.HasNextPage)
	s.Require().True(got.Pagination.HasPreviousPage)
}

func (s *TasksIntegrationSuite) TestGetTasks_PageBeyondEndIsEmpty() {
	got := s.getPage("?page=99")

	s.Require().Len(got.Tasks, 0)
	s.Require().Equal(99, got.Pagination.CurrentPage)
	s.Require().Equal(3, got.Pagination.TotalPages)
}

func (s *TasksIntegrationSuite) TestCrudRoundTrip() {
	body := `{
		"title": "Prise de sang",
		"priority": "high",
		"category": "medication",
		"dueDate": "2026-03-20",
		"patient": {"firstName": "Marie", "lastName": "Lefebvre", "roomNumber": "305"},
		"assignedTo": {"name": "Dr. Petit", "role": "doctor"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusCreated, rec.Code)

	var created dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	s.Require().NotEmpty(created.ID)
	s.Require().Equal("Prise de sang", created.Title)
	s.Require().Equal("high", created.Priority)
	s.Require().Equal("pending", created.Status)
	s.Require().Equal("medication", created.Category)
	s.Require().NotNil(created.Patient)
	s.Require().Equal("lefebvre-marie", created.Patient.ID)
	s.Require().NotNil(created.AssignedTo)
	s.Require().Equal("dr.-petit", created.AssignedTo.ID)

	req = httptest.NewRequest(http.MethodPut, "/api/tasks/"+created.ID, strings.NewReader(`{"status": "completed", "notes": "RAS"}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code)

	var updated dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &updated))
	s.Require().Equal("completed", updated.Status)
	s.Require().Equal("RAS", updated.Notes)
	s.Require().Equal("Prise de sang", updated.Title)

	req = httptest.NewRequest(http.MethodDelete, "/api/tasks/"+created.ID, nil)
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/tasks/"+created.ID, nil)
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Equal(http.StatusNotFound, got.ErrDetails.Code)
	s.Require().Equal("Task not found.", got.ErrDetails.Message)
}

func (s *TasksIntegrationSuite) TestFilterTasks_MatchesScalarField() {
	req := httptest.NewRequest(http.MethodGet, "/api/tasks/filter/id/task-042", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code)

	var got []dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Len(got, 1)
	s.Require().Equal("Tâche 042", got[0].Title)
}

func (s *TasksIntegrationSuite) TestSummarize_NotConfigured() {
	req := httptest.NewRequest(http.MethodPost, "/api/ai/summarize", strings.NewReader(`{"text": "compte rendu"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusNotImplemented, rec.Code)
}

func (s *TasksIntegrationSuite) TestHealth_ServedAtRoot() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code)

	var got handlers.HealthBasic
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Equal(handlers.StatusOk, got.Message)
}

func (s *TasksIntegrationSuite) TestHealthReport_CountsTasks() {
	req := httptest.NewRequest(http.MethodGet, "/health/report", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code)

	var got handlers.HealthAdvanced
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Equal(301, got.TaskCount)
	s.Require().Equal(handlers.StatusOk, got.Status.Store)
}
