package task

import "context"

type Repository interface {
	List(ctx context.Context) ([]Task, error)
	Save(ctx context.Context, tasks []Task) error
}
