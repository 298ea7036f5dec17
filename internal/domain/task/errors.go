package task

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidPriority = errors.New("priority must be Low, Medium or High")
)
