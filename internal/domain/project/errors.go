package project

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrInvalidStatus   = errors.New("status must be In Progress, Completed or On Hold")
)
