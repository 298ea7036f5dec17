package lead

import "context"

type Repository interface {
	List(ctx context.Context) ([]Lead, error)
	Save(ctx context.Context, leads []Lead) error
}
