package ports

import (
	"context"

	"caretrack/internal/core/domain"
)

type TaskRepository interface {
	List(ctx context.Context, page, limit int) ([]domain.Task, domain.PaginationInfo, error)
	Get(ctx context.Context, id string) (domain.Task, error)
	Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	Update(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error)
	Delete(ctx context.Context, id string) (domain.Task, error)
	MatchField(ctx context.Context, field, value string) ([]domain.Task, error)
	Count(ctx context.Context) (int, error)
}

type TaskService interface {
	List(ctx context.Context, page, limit int) ([]domain.Task, domain.PaginationInfo, error)
	Get(ctx context.Context, id string) (domain.Task, error)
	Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	Update(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error)
	Delete(ctx context.Context, id string) (domain.Task, error)
	MatchField(ctx context.Context, field, value string) ([]domain.Task, error)
	Count(ctx context.Context) (int, error)
}

// Summarizer is the narrow boundary to the AI collaborator. It is
// best-effort and non-deterministic; nothing else may depend on its output.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}
