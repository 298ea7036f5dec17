package project

import "context"

type Repository interface {
	List(ctx context.Context) ([]Project, error)
	Save(ctx context.Context, projects []Project) error
}
