package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/glassdash/crm-backend-go/internal/domain/attendance"
	"github.com/glassdash/crm-backend-go/internal/domain/customer"
	"github.com/glassdash/crm-backend-go/internal/domain/dashboard"
	"github.com/glassdash/crm-backend-go/internal/domain/employee"
	"github.com/glassdash/crm-backend-go/internal/domain/lead"
	"github.com/glassdash/crm-backend-go/internal/domain/task"
	"github.com/glassdash/crm-backend-go/internal/pkg/kvstore"
	"github.com/glassdash/crm-backend-go/internal/repository/kv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	store := kvstore.NewMemoryStore()
	customerRepo := kv.NewCustomerRepository(store)
	leadRepo := kv.NewLeadRepository(store)
	employeeRepo := kv.NewEmployeeRepository(store)
	projectRepo := kv.NewProjectRepository(store)
	taskRepo := kv.NewTaskRepository(store)
	attendanceRepo := kv.NewAttendanceRepository(store)
	ctx := context.Background()

	require.NoError(t, customerRepo.Save(ctx, []customer.Customer{
		{ID: "c1", Name: "Acme", Status: customer.StatusActive},
	}))
	require.NoError(t, leadRepo.Save(ctx, []lead.Lead{
		{ID: "l1", Name: "Globex", Value: decimal.NewFromInt(5000), Status: lead.StatusNew},
		{ID: "l2", Name: "Initech", Value: decimal.NewFromInt(2500), Status: lead.StatusQualified},
	}))
	require.NoError(t, employeeRepo.Save(ctx, []employee.Employee{
		{ID: "e1", Name: "Bob", Status: employee.StatusActive},
	}))
	require.NoError(t, taskRepo.Save(ctx, []task.Task{
		{ID: "t1", Title: "Follow up", Status: task.StatusPending},
		{ID: "t2", Title: "Ship it", Status: task.StatusCompleted},
	}))

	ledger := attendance.Ledger{}
	ledger.Mark(time.Now().UTC().Format("2006-01-02"), "e1", attendance.StatusPresent)
	require.NoError(t, attendanceRepo.Save(ctx, ledger))

	svc := NewDashboardService(customerRepo, leadRepo, employeeRepo, projectRepo, taskRepo, attendanceRepo)
	summary, err := svc.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, dashboard.Summary{
		Customers:    1,
		Employees:    1,
		Projects:     0,
		PendingTasks: 1,
		Leads:        2,
		LeadsByStage: map[string]int{
			"New": 1, "Contacted": 0, "Qualified": 1, "Converted": 0,
		},
		PipelineValue: summary.PipelineValue,
		PresentToday:  1,
	}, summary)
	assert.True(t, summary.PipelineValue.Equal(decimal.NewFromInt(7500)))
}

func TestSummary_EmptyStore(t *testing.T) {
	store := kvstore.NewMemoryStore()
	svc := NewDashboardService(
		kv.NewCustomerRepository(store),
		kv.NewLeadRepository(store),
		kv.NewEmployeeRepository(store),
		kv.NewProjectRepository(store),
		kv.NewTaskRepository(store),
		kv.NewAttendanceRepository(store),
	)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.Customers)
	assert.Zero(t, summary.PresentToday)
	assert.True(t, summary.PipelineValue.IsZero())
	assert.Len(t, summary.LeadsByStage, 4)
}
