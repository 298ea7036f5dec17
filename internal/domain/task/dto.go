package task

import "github.com/glassdash/crm-backend-go/internal/pkg/validator"

type CreateTaskRequest struct {
	Title    string `json:"title"`
	DueDate  string `json:"due_date"`
	Priority string `json:"priority"`
	Assignee string `json:"assignee"`
}

func (r CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if !validator.IsEmpty(r.DueDate) {
		if _, ok := validator.IsValidDate(r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "due date must be YYYY-MM-DD"})
		}
	}
	if !validator.IsEmpty(r.Priority) && !validator.IsInSlice(r.Priority, []string{string(PriorityLow), string(PriorityMedium), string(PriorityHigh)}) {
		errs = append(errs, validator.ValidationError{Field: "priority", Message: ErrInvalidPriority.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTaskRequest struct {
	Title    string `json:"title"`
	DueDate  string `json:"due_date"`
	Priority string `json:"priority"`
	Assignee string `json:"assignee"`
	Progress *int   `json:"progress,omitempty"`
	Status   string `json:"status"`
}

func (r UpdateTaskRequest) Validate() error {
	errsIface := CreateTaskRequest{Title: r.Title, DueDate: r.DueDate, Priority: r.Priority, Assignee: r.Assignee}.Validate()
	errs, _ := errsIface.(validator.ValidationErrors)

	if r.Progress != nil && (*r.Progress < 0 || *r.Progress > 100) {
		errs = append(errs, validator.ValidationError{Field: "progress", Message: "progress must be between 0 and 100"})
	}
	if !validator.IsEmpty(r.Status) && !validator.IsInSlice(r.Status, []string{string(StatusPending), string(StatusCompleted)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Pending or Completed"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
