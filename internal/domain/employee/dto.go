package employee

import (
	"github.com/glassdash/crm-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name       string          `json:"name"`
	Role       string          `json:"role"`
	Department string          `json:"department"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	Status     string          `json:"status"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsEmpty(r.Email) && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "base salary cannot be negative"})
	}
	if !validator.IsEmpty(r.Status) && !validator.IsInSlice(r.Status, []string{string(StatusActive), string(StatusOnLeave), string(StatusTerminated)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: ErrInvalidStatus.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	Name       string          `json:"name"`
	Role       string          `json:"role"`
	Department string          `json:"department"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	Status     string          `json:"status"`
}

func (r UpdateEmployeeRequest) Validate() error {
	return CreateEmployeeRequest(r).Validate()
}
