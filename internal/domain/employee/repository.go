package employee

import "context"

type Repository interface {
	List(ctx context.Context) ([]Employee, error)
	Save(ctx context.Context, employees []Employee) error
}
