package customer

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/glassdash/crm-backend-go/internal/domain/customer"
	"github.com/glassdash/crm-backend-go/internal/pkg/spreadsheet"
	"github.com/google/uuid"
)

// placeholderEmail fills rows imported without an email column.
const placeholderEmail = "no-email@example.com"

type CustomerServiceImpl struct {
	customerRepo customer.Repository
}

func NewCustomerService(customerRepo customer.Repository) customer.Service {
	return &CustomerServiceImpl{customerRepo: customerRepo}
}

func (s *CustomerServiceImpl) List(ctx context.Context) ([]customer.Customer, error) {
	return s.customerRepo.List(ctx)
}

func (s *CustomerServiceImpl) GetByID(ctx context.Context, id string) (customer.Customer, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return customer.Customer{}, err
	}
	for _, c := range customers {
		if c.ID == id {
			return c, nil
		}
	}
	return customer.Customer{}, customer.ErrCustomerNotFound
}

func (s *CustomerServiceImpl) Create(ctx context.Context, req customer.CreateCustomerRequest) (customer.Customer, error) {
	if err := req.Validate(); err != nil {
		return customer.Customer{}, err
	}

	status := customer.Status(req.Status)
	if req.Status == "" {
		status = customer.StatusActive
	}

	newCustomer := customer.Customer{
		ID:     uuid.NewString(),
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Status: status,
		Joined: time.Now(),
	}

	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return customer.Customer{}, err
	}
	if err := s.customerRepo.Save(ctx, append(customers, newCustomer)); err != nil {
		return customer.Customer{}, err
	}
	return newCustomer, nil
}

func (s *CustomerServiceImpl) Update(ctx context.Context, id string, req customer.UpdateCustomerRequest) (customer.Customer, error) {
	if err := req.Validate(); err != nil {
		return customer.Customer{}, err
	}

	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return customer.Customer{}, err
	}

	for i, c := range customers {
		if c.ID != id {
			continue
		}
		c.Name = req.Name
		c.Email = req.Email
		c.Phone = req.Phone
		if req.Status != "" {
			c.Status = customer.Status(req.Status)
		}
		customers[i] = c
		if err := s.customerRepo.Save(ctx, customers); err != nil {
			return customer.Customer{}, err
		}
		return c, nil
	}
	return customer.Customer{}, customer.ErrCustomerNotFound
}

func (s *CustomerServiceImpl) Delete(ctx context.Context, id string) error {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return err
	}

	kept := customers[:0]
	found := false
	for _, c := range customers {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return customer.ErrCustomerNotFound
	}
	return s.customerRepo.Save(ctx, kept)
}

func mapRow(row spreadsheet.Row) customer.Customer {
	name := row.Get("Name", "name")
	if name == "" {
		name = "Unknown"
	}
	email := row.Get("Email", "email")
	if email == "" {
		email = placeholderEmail
	}

	return customer.Customer{
		ID:     uuid.NewString(),
		Name:   name,
		Email:  email,
		Phone:  row.Get("Phone", "phone"),
		Status: normalizeStatus(row.Get("Status", "status")),
		Joined: time.Now(),
	}
}

// normalizeStatus matches the closed enumeration case-insensitively and
// falls back to Active.
func normalizeStatus(raw string) customer.Status {
	for _, status := range []customer.Status{customer.StatusActive, customer.StatusInactive, customer.StatusLead} {
		if strings.EqualFold(strings.TrimSpace(raw), string(status)) {
			return status
		}
	}
	return customer.StatusActive
}

func (s *CustomerServiceImpl) Import(ctx context.Context, r io.Reader) (spreadsheet.ImportResult, error) {
	rows, err := spreadsheet.Parse(r)
	if err != nil {
		return spreadsheet.ImportResult{}, err
	}

	added := make([]customer.Customer, 0, len(rows))
	for _, row := range rows {
		added = append(added, mapRow(row))
	}

	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return spreadsheet.ImportResult{}, err
	}
	if err := s.customerRepo.Save(ctx, append(customers, added...)); err != nil {
		return spreadsheet.ImportResult{}, err
	}

	return spreadsheet.ImportResult{
		Accepted: len(added),
		Rejected: len(rows) - len(added),
		Message:  fmt.Sprintf("Added %d customers", len(added)),
	}, nil
}
