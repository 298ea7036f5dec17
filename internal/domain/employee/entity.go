package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the canonical record persisted under the "employees" store
// key. JSON tags match the document shape the UI reads.
type Employee struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Role       string          `json:"role"`
	Department string          `json:"department"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	BaseSalary decimal.Decimal `json:"baseSalary"`
	Status     Status          `json:"status"`
	Joined     time.Time       `json:"joined"`
}

type Status string

const (
	StatusActive     Status = "Active"
	StatusOnLeave    Status = "On Leave"
	StatusTerminated Status = "Terminated"
)
