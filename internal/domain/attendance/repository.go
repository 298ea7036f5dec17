package attendance

import "context"

type Repository interface {
	Ledger(ctx context.Context) (Ledger, error)
	Save(ctx context.Context, ledger Ledger) error
}
