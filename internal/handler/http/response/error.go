package response

import (
	"errors"
	"net/http"

	"github.com/glassdash/crm-backend-go/internal/domain/attendance"
	"github.com/glassdash/crm-backend-go/internal/domain/auth"
	"github.com/glassdash/crm-backend-go/internal/domain/customer"
	"github.com/glassdash/crm-backend-go/internal/domain/employee"
	"github.com/glassdash/crm-backend-go/internal/domain/lead"
	"github.com/glassdash/crm-backend-go/internal/domain/payroll"
	"github.com/glassdash/crm-backend-go/internal/domain/project"
	"github.com/glassdash/crm-backend-go/internal/domain/task"
	"github.com/glassdash/crm-backend-go/internal/domain/user"
	"github.com/glassdash/crm-backend-go/internal/pkg/spreadsheet"
	"github.com/glassdash/crm-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Upload errors. Parse failures are surfaced generically with no
	// row-level detail.
	var parseErr *spreadsheet.ParseError
	if errors.As(err, &parseErr) {
		BadRequest(w, "Could not parse file", nil)
		return
	}

	switch {
	case errors.Is(err, spreadsheet.ErrEmptyInput):
		BadRequest(w, "File is empty", nil)

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Record domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, customer.ErrCustomerNotFound):
		NotFound(w, "Customer not found")
	case errors.Is(err, lead.ErrLeadNotFound):
		NotFound(w, "Lead not found")
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, lead.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)

	// Attendance / payroll query errors
	case errors.Is(err, attendance.ErrInvalidDate):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
