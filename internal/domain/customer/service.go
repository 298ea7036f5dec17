package customer

import (
	"context"
	"io"

	"github.com/glassdash/crm-backend-go/internal/pkg/spreadsheet"
)

type Service interface {
	List(ctx context.Context) ([]Customer, error)
	GetByID(ctx context.Context, id string) (Customer, error)
	Create(ctx context.Context, req CreateCustomerRequest) (Customer, error)
	Update(ctx context.Context, id string, req UpdateCustomerRequest) (Customer, error)
	Delete(ctx context.Context, id string) error
	Import(ctx context.Context, r io.Reader) (spreadsheet.ImportResult, error)
}
