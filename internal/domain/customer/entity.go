package customer

import "time"

type Customer struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Phone  string    `json:"phone"`
	Status Status    `json:"status"`
	Joined time.Time `json:"joined"`
}

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
	StatusLead     Status = "Lead"
)
