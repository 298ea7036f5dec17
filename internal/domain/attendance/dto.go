package attendance

import "github.com/glassdash/crm-backend-go/internal/pkg/validator"

type ToggleRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
}

func (r ToggleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: ErrInvalidDate.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DayEntry is one employee's status on the requested day.
type DayEntry struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Status     Status `json:"status"`
}

// DaySheet is the daily tracker view: every employee with their status for
// one day, Absent when unrecorded.
type DaySheet struct {
	Date    string     `json:"date"`
	Present int        `json:"present"`
	Total   int        `json:"total"`
	Entries []DayEntry `json:"entries"`
}
