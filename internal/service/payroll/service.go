package payroll

import (
	"context"

	"github.com/glassdash/crm-backend-go/internal/domain/attendance"
	"github.com/glassdash/crm-backend-go/internal/domain/employee"
	"github.com/glassdash/crm-backend-go/internal/domain/payroll"
	"github.com/glassdash/crm-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// payPeriodDays is the flat denominator for the daily rate. Months are
// standardized to 30 days regardless of their actual length.
const payPeriodDays = 30

type PayrollServiceImpl struct {
	employeeRepo   employee.Repository
	attendanceRepo attendance.Repository
}

func NewPayrollService(employeeRepo employee.Repository, attendanceRepo attendance.Repository) payroll.Service {
	return &PayrollServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

// Derive projects the ledger and employee list into payroll lines for the
// period. Net salary is dailyRate × presentDays rounded half away from
// zero to a whole amount.
func (s *PayrollServiceImpl) Derive(ctx context.Context, period string) (payroll.Summary, error) {
	if !validator.IsValidPeriod(period) {
		return payroll.Summary{}, payroll.ErrInvalidPeriod
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return payroll.Summary{}, err
	}
	ledger, err := s.attendanceRepo.Ledger(ctx)
	if err != nil {
		return payroll.Summary{}, err
	}

	summary := payroll.Summary{
		Period: period,
		Lines:  make([]payroll.Line, 0, len(employees)),
	}
	for _, e := range employees {
		presentDays := ledger.PresentDays(period, e.ID)

		dailyRate := e.BaseSalary.Div(decimal.NewFromInt(payPeriodDays))
		netSalary := dailyRate.Mul(decimal.NewFromInt(int64(presentDays))).Round(0).IntPart()

		status := payroll.StatusPending
		if netSalary > 0 {
			status = payroll.StatusProcessed
			summary.EmployeesPaid++
		}
		summary.TotalPayout += netSalary

		summary.Lines = append(summary.Lines, payroll.Line{
			EmployeeID:  e.ID,
			Name:        e.Name,
			Role:        e.Role,
			BaseSalary:  e.BaseSalary,
			PresentDays: presentDays,
			NetSalary:   netSalary,
			Status:      status,
		})
	}
	return summary, nil
}
