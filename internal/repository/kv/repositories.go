// Package kv implements the domain repositories on top of the keyed
// JSON-document store. Each domain owns one document: record domains store a
// JSON array, attendance stores the ledger object.
package kv

import (
	"context"

	"github.com/glassdash/crm-backend-go/internal/domain/customer"
	"github.com/glassdash/crm-backend-go/internal/domain/employee"
	"github.com/glassdash/crm-backend-go/internal/domain/lead"
	"github.com/glassdash/crm-backend-go/internal/domain/project"
	"github.com/glassdash/crm-backend-go/internal/domain/task"
	"github.com/glassdash/crm-backend-go/internal/domain/user"
	"github.com/glassdash/crm-backend-go/internal/pkg/kvstore"
)

// Store keys, one per domain.
const (
	KeyUsers      = "users"
	KeyEmployees  = "employees"
	KeyCustomers  = "customers"
	KeyLeads      = "leads"
	KeyProjects   = "projects"
	KeyTasks      = "tasks"
	KeyAttendance = "attendance"
)

// listRepository persists a slice of records as one JSON array document.
type listRepository[T any] struct {
	store kvstore.Store
	key   string
}

func (r listRepository[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if _, err := kvstore.GetJSON(ctx, r.store, r.key, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r listRepository[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	return kvstore.SetJSON(ctx, r.store, r.key, items)
}

func NewUserRepository(store kvstore.Store) user.Repository {
	return listRepository[user.User]{store: store, key: KeyUsers}
}

func NewEmployeeRepository(store kvstore.Store) employee.Repository {
	return listRepository[employee.Employee]{store: store, key: KeyEmployees}
}

func NewCustomerRepository(store kvstore.Store) customer.Repository {
	return listRepository[customer.Customer]{store: store, key: KeyCustomers}
}

func NewLeadRepository(store kvstore.Store) lead.Repository {
	return listRepository[lead.Lead]{store: store, key: KeyLeads}
}

func NewProjectRepository(store kvstore.Store) project.Repository {
	return listRepository[project.Project]{store: store, key: KeyProjects}
}

func NewTaskRepository(store kvstore.Store) task.Repository {
	return listRepository[task.Task]{store: store, key: KeyTasks}
}
