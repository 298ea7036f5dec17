package dashboard

import (
	"context"
	"time"

	"github.com/glassdash/crm-backend-go/internal/domain/attendance"
	"github.com/glassdash/crm-backend-go/internal/domain/customer"
	"github.com/glassdash/crm-backend-go/internal/domain/dashboard"
	"github.com/glassdash/crm-backend-go/internal/domain/employee"
	"github.com/glassdash/crm-backend-go/internal/domain/lead"
	"github.com/glassdash/crm-backend-go/internal/domain/project"
	"github.com/glassdash/crm-backend-go/internal/domain/task"
	"github.com/shopspring/decimal"
)

type DashboardServiceImpl struct {
	customerRepo   customer.Repository
	leadRepo       lead.Repository
	employeeRepo   employee.Repository
	projectRepo    project.Repository
	taskRepo       task.Repository
	attendanceRepo attendance.Repository
}

func NewDashboardService(
	customerRepo customer.Repository,
	leadRepo lead.Repository,
	employeeRepo employee.Repository,
	projectRepo project.Repository,
	taskRepo task.Repository,
	attendanceRepo attendance.Repository,
) dashboard.Service {
	return &DashboardServiceImpl{
		customerRepo:   customerRepo,
		leadRepo:       leadRepo,
		employeeRepo:   employeeRepo,
		projectRepo:    projectRepo,
		taskRepo:       taskRepo,
		attendanceRepo: attendanceRepo,
	}
}

func (s *DashboardServiceImpl) Summary(ctx context.Context) (dashboard.Summary, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return dashboard.Summary{}, err
	}
	leads, err := s.leadRepo.List(ctx)
	if err != nil {
		return dashboard.Summary{}, err
	}
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return dashboard.Summary{}, err
	}
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return dashboard.Summary{}, err
	}
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return dashboard.Summary{}, err
	}
	ledger, err := s.attendanceRepo.Ledger(ctx)
	if err != nil {
		return dashboard.Summary{}, err
	}

	summary := dashboard.Summary{
		Customers:     len(customers),
		Employees:     len(employees),
		Projects:      len(projects),
		Leads:         len(leads),
		LeadsByStage:  make(map[string]int, len(lead.PipelineStages)),
		PipelineValue: decimal.Zero,
	}
	for _, stage := range lead.PipelineStages {
		summary.LeadsByStage[string(stage)] = 0
	}
	for _, l := range leads {
		summary.LeadsByStage[string(l.Status)]++
		summary.PipelineValue = summary.PipelineValue.Add(l.Value)
	}
	for _, t := range tasks {
		if t.Status == task.StatusPending {
			summary.PendingTasks++
		}
	}

	today := time.Now().UTC().Format("2006-01-02")
	for _, status := range ledger[today] {
		if status == attendance.StatusPresent {
			summary.PresentToday++
		}
	}
	return summary, nil
}
