package task

import "context"

type Service interface {
	List(ctx context.Context) ([]Task, error)
	Create(ctx context.Context, req CreateTaskRequest) (Task, error)
	Update(ctx context.Context, id string, req UpdateTaskRequest) (Task, error)
	Delete(ctx context.Context, id string) error
}
