package user

import "context"

type Repository interface {
	List(ctx context.Context) ([]User, error)
	Save(ctx context.Context, users []User) error
}
