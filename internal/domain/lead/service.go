package lead

import (
	"context"
	"io"

	"github.com/glassdash/crm-backend-go/internal/pkg/spreadsheet"
)

type Service interface {
	List(ctx context.Context) ([]Lead, error)
	Create(ctx context.Context, req CreateLeadRequest) (Lead, error)
	Delete(ctx context.Context, id string) error

	// UpdateStatus moves a lead to another pipeline column, mirroring a
	// board drag between columns.
	UpdateStatus(ctx context.Context, id string, req UpdateLeadStatusRequest) (Lead, error)

	Import(ctx context.Context, r io.Reader) (spreadsheet.ImportResult, error)
}
