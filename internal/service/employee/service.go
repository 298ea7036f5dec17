package employee

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/glassdash/crm-backend-go/internal/domain/employee"
	"github.com/glassdash/crm-backend-go/internal/pkg/spreadsheet"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.Repository
}

func NewEmployeeService(employeeRepo employee.Repository) employee.Service {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.Employee, error) {
	return s.employeeRepo.List(ctx)
}

func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	for _, e := range employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	status := employee.Status(req.Status)
	if req.Status == "" {
		status = employee.StatusActive
	}

	newEmployee := employee.Employee{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Role:       req.Role,
		Department: req.Department,
		Email:      req.Email,
		Phone:      req.Phone,
		BaseSalary: req.BaseSalary,
		Status:     status,
		Joined:     time.Now(),
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	if err := s.employeeRepo.Save(ctx, append(employees, newEmployee)); err != nil {
		return employee.Employee{}, err
	}
	return newEmployee, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.Employee{}, err
	}

	for i, e := range employees {
		if e.ID != id {
			continue
		}
		e.Name = req.Name
		e.Role = req.Role
		e.Department = req.Department
		e.Email = req.Email
		e.Phone = req.Phone
		e.BaseSalary = req.BaseSalary
		if req.Status != "" {
			e.Status = employee.Status(req.Status)
		}
		employees[i] = e
		if err := s.employeeRepo.Save(ctx, employees); err != nil {
			return employee.Employee{}, err
		}
		return e, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// Delete removes the employee record. Historical ledger entries referencing
// the id are left in place.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return err
	}

	kept := employees[:0]
	found := false
	for _, e := range employees {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return employee.ErrEmployeeNotFound
	}
	return s.employeeRepo.Save(ctx, kept)
}

const unknownName = "Unknown"

// mapRow maps one raw spreadsheet row to a canonical employee record.
// Missing fields get documented defaults; ok is false when the row has no
// usable name and must be dropped.
func mapRow(row spreadsheet.Row) (employee.Employee, bool) {
	name := row.Get("Name", "name")
	if name == "" {
		name = unknownName
	}

	salary, err := decimal.NewFromString(strings.TrimSpace(row.Get("Salary", "salary", "BaseSalary")))
	if err != nil || salary.IsNegative() {
		salary = decimal.Zero
	}

	status := employee.StatusOnLeave
	if strings.EqualFold(strings.TrimSpace(row.Get("Status")), "active") {
		status = employee.StatusActive
	}

	mapped := employee.Employee{
		ID:         uuid.NewString(),
		Name:       name,
		Role:       defaultIfEmpty(row.Get("Role", "role"), "Staff"),
		Department: defaultIfEmpty(row.Get("Department", "department"), "General"),
		Email:      row.Get("Email", "email"),
		Phone:      row.Get("Phone", "phone"),
		BaseSalary: salary,
		Status:     status,
		Joined:     time.Now(),
	}
	return mapped, name != unknownName
}

func defaultIfEmpty(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// Import is a pure append: mapped rows are buffered and committed with one
// store write, so a failed parse never leaves partial records behind.
func (s *EmployeeServiceImpl) Import(ctx context.Context, r io.Reader) (spreadsheet.ImportResult, error) {
	rows, err := spreadsheet.Parse(r)
	if err != nil {
		return spreadsheet.ImportResult{}, err
	}

	added := make([]employee.Employee, 0, len(rows))
	for _, row := range rows {
		if mapped, ok := mapRow(row); ok {
			added = append(added, mapped)
		}
	}

	if len(added) > 0 {
		employees, err := s.employeeRepo.List(ctx)
		if err != nil {
			return spreadsheet.ImportResult{}, err
		}
		if err := s.employeeRepo.Save(ctx, append(employees, added...)); err != nil {
			return spreadsheet.ImportResult{}, err
		}
	}

	return spreadsheet.ImportResult{
		Accepted: len(added),
		Rejected: len(rows) - len(added),
		Message:  fmt.Sprintf("Added %d employees", len(added)),
	}, nil
}
