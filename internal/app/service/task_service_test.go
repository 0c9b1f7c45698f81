package service

import (
	"context"
	"errors"
	"testing"

	"caretrack/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) List(ctx context.Context, page, limit int) ([]domain.Task, domain.PaginationInfo, error) {
	args := m.Called(ctx, page, limit)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	var pagination domain.PaginationInfo
	if value := args.Get(1); value != nil {
		pagination = value.(domain.PaginationInfo)
	}
	return tasks, pagination, args.Error(2)
}

func (m *taskRepositoryMock) Get(ctx context.Context, id string) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Update(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Delete(ctx context.Context, id string) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) MatchField(ctx context.Context, field, value string) ([]domain.Task, error) {
	args := m.Called(ctx, field, value)

	var tasks []domain.Task
	if v := args.Get(0); v != nil {
		tasks = v.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func TestTaskService_List_DelegatesToRepository(t *testing.T) {
	repoMock := new(taskRepositoryMock)
	expected := []domain.Task{{ID: "task-1", Title: "ECG"}}
	repoMock.On("List", mock.Anything, 2, 150).Return(expected, domain.NewPaginationInfo(2, 150, 301), nil).Once()

	svc := NewTaskService(repoMock)
	tasks, pagination, err := svc.List(context.Background(), 2, 150)

	require.NoError(t, err)
	assert.Equal(t, expected, tasks)
	assert.Equal(t, 2, pagination.CurrentPage)
	assert.Equal(t, 3, pagination.TotalPages)
	repoMock.AssertExpectations(t)
}

func TestTaskService_Get_PropagatesNotFound(t *testing.T) {
	repoMock := new(taskRepositoryMock)
	repoMock.On("Get", mock.Anything, "missing").Return(domain.Task{}, domain.ErrTaskNotFound).Once()

	svc := NewTaskService(repoMock)
	_, err := svc.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	repoMock.AssertExpectations(t)
}

func TestTaskService_MatchField_PropagatesUnknownField(t *testing.T) {
	repoMock := new(taskRepositoryMock)
	repoMock.On("MatchField", mock.Anything, "room", "204").Return(nil, domain.ErrUnknownField).Once()

	svc := NewTaskService(repoMock)
	_, err := svc.MatchField(context.Background(), "room", "204")

	assert.ErrorIs(t, err, domain.ErrUnknownField)
	repoMock.AssertExpectations(t)
}

func TestTaskService_Count(t *testing.T) {
	repoMock := new(taskRepositoryMock)
	repoMock.On("Count", mock.Anything).Return(0, errors.New("store gone")).Once()

	svc := NewTaskService(repoMock)
	_, err := svc.Count(context.Background())

	assert.Error(t, err)
	repoMock.AssertExpectations(t)
}
