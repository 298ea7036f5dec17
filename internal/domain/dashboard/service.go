package dashboard

import "context"

type Service interface {
	Summary(ctx context.Context) (Summary, error)
}
