package project

import "github.com/glassdash/crm-backend-go/internal/pkg/validator"

type CreateProjectRequest struct {
	Name   string `json:"name"`
	Client string `json:"client"`
	Status string `json:"status"`
}

func (r CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsEmpty(r.Status) && !validator.IsInSlice(r.Status, []string{string(StatusInProgress), string(StatusCompleted), string(StatusOnHold)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: ErrInvalidStatus.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProjectRequest struct {
	Name     string `json:"name"`
	Client   string `json:"client"`
	Status   string `json:"status"`
	Progress *int   `json:"progress,omitempty"`
}

func (r UpdateProjectRequest) Validate() error {
	err := CreateProjectRequest{Name: r.Name, Client: r.Client, Status: r.Status}.Validate()
	if r.Progress != nil && (*r.Progress < 0 || *r.Progress > 100) {
		errs, _ := err.(validator.ValidationErrors)
		errs = append(errs, validator.ValidationError{Field: "progress", Message: "progress must be between 0 and 100"})
		return errs
	}
	return err
}
