package employee

import (
	"context"
	"io"

	"github.com/glassdash/crm-backend-go/internal/pkg/spreadsheet"
)

type Service interface {
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error)
	Delete(ctx context.Context, id string) error

	// Import appends records mapped from a spreadsheet file. Existing
	// records are never updated; ledger history is never touched.
	Import(ctx context.Context, r io.Reader) (spreadsheet.ImportResult, error)
}
