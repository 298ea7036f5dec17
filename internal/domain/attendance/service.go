package attendance

import (
	"context"
	"io"

	"github.com/glassdash/crm-backend-go/internal/pkg/spreadsheet"
)

type Service interface {
	DaySheet(ctx context.Context, date string) (DaySheet, error)

	// Toggle flips one employee's status for one day. It writes through
	// the same overwrite rule as bulk import.
	Toggle(ctx context.Context, req ToggleRequest) (DayEntry, error)

	// Import reconciles a spreadsheet of raw attendance rows into the
	// ledger: fuzzy employee match, date and status normalization, then a
	// last-write-wins merge committed as a single store write.
	Import(ctx context.Context, r io.Reader) (spreadsheet.ImportResult, error)
}
