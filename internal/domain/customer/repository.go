package customer

import "context"

type Repository interface {
	List(ctx context.Context) ([]Customer, error)
	Save(ctx context.Context, customers []Customer) error
}
