package payroll

import "context"

type Service interface {
	// Derive computes one Line per employee for the YYYY-MM period from
	// the attendance ledger. Pure projection: no writes, no caching.
	Derive(ctx context.Context, period string) (Summary, error)
}
