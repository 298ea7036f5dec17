package payroll

import "github.com/shopspring/decimal"

// Line is one employee's derived pay for a period. Lines are recomputed on
// every query and never persisted, so they always reflect the current
// ledger and employee records.
type Line struct {
	EmployeeID  string          `json:"employee_id"`
	Name        string          `json:"name"`
	Role        string          `json:"role"`
	BaseSalary  decimal.Decimal `json:"base_salary"`
	PresentDays int             `json:"present_days"`
	NetSalary   int64           `json:"net_salary"`
	Status      Status          `json:"status"`
}

type Status string

const (
	StatusPending   Status = "Pending"
	StatusProcessed Status = "Processed"
)

// Summary is the payroll view for one YYYY-MM pay period.
type Summary struct {
	Period        string `json:"period"`
	TotalPayout   int64  `json:"total_payout"`
	EmployeesPaid int    `json:"employees_paid"`
	Lines         []Line `json:"lines"`
}
