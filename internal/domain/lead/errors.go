package lead

import "errors"

var (
	ErrLeadNotFound  = errors.New("lead not found")
	ErrInvalidStatus = errors.New("status must be New, Contacted, Qualified or Converted")
)
