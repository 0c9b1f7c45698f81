package service

import (
	"context"

	"caretrack/internal/core/domain"
	"caretrack/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) List(ctx context.Context, page, limit int) ([]domain.Task, domain.PaginationInfo, error) {
	return s.taskRepository.List(ctx, page, limit)
}

func (s *TaskService) Get(ctx context.Context, id string) (domain.Task, error) {
	return s.taskRepository.Get(ctx, id)
}

func (s *TaskService) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	return s.taskRepository.Create(ctx, input)
}

func (s *TaskService) Update(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error) {
	return s.taskRepository.Update(ctx, id, input)
}

func (s *TaskService) Delete(ctx context.Context, id string) (domain.Task, error) {
	return s.taskRepository.Delete(ctx, id)
}

func (s *TaskService) MatchField(ctx context.Context, field, value string) ([]domain.Task, error) {
	return s.taskRepository.MatchField(ctx, field, value)
}

func (s *TaskService) Count(ctx context.Context) (int, error) {
	return s.taskRepository.Count(ctx)
}

var _ ports.TaskService = (*TaskService)(nil)
