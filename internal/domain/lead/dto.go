package lead

import (
	"github.com/glassdash/crm-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateLeadRequest struct {
	Name   string          `json:"name"`
	Email  string          `json:"email"`
	Value  decimal.Decimal `json:"value"`
	Status string          `json:"status"`
}

func (r CreateLeadRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsEmpty(r.Email) && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if !validator.IsEmpty(r.Status) && !IsValidStage(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: ErrInvalidStatus.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeadStatusRequest struct {
	Status string `json:"status"`
}

func (r UpdateLeadStatusRequest) Validate() error {
	if !IsValidStage(r.Status) {
		return validator.ValidationErrors{{Field: "status", Message: ErrInvalidStatus.Error()}}
	}
	return nil
}
