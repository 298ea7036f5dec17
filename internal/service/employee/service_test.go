package employee

import (
	"context"
	"strings"
	"testing"

	"github.com/glassdash/crm-backend-go/internal/domain/employee"
	"github.com/glassdash/crm-backend-go/internal/pkg/kvstore"
	"github.com/glassdash/crm-backend-go/internal/repository/kv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestService(t *testing.T) (employee.Service, employee.Repository) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	repo := kv.NewEmployeeRepository(store)
	return NewEmployeeService(repo), repo
}

func TestCreateGetUpdateDelete(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		Name:       "Bob Smith",
		Role:       "Engineer",
		Department: "Product",
		Email:      "bob@example.com",
		BaseSalary: decimal.NewFromInt(3000),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, employee.StatusActive, created.Status)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob Smith", got.Name)

	updated, err := svc.Update(ctx, created.ID, employee.UpdateEmployeeRequest{
		Name:       "Bob Smith",
		Role:       "Senior Engineer",
		Department: "Product",
		Email:      "bob@example.com",
		BaseSalary: decimal.NewFromInt(3500),
		Status:     string(employee.StatusOnLeave),
	})
	require.NoError(t, err)
	assert.Equal(t, "Senior Engineer", updated.Role)
	assert.Equal(t, employee.StatusOnLeave, updated.Status)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	err = svc.Delete(context.Background(), "ghost")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestImport_AppliesDefaults(t *testing.T) {
	svc, repo := setupTestService(t)

	csv := "Name,Role,Department,Salary,Status\n" +
		"Bob Smith,Engineer,Product,3000,ACTIVE\n" +
		"Alice Wong,,,,\n"

	result, err := svc.Import(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Accepted)
	assert.Equal(t, 0, result.Rejected)
	assert.Equal(t, "Added 2 employees", result.Message)

	employees, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 2)

	bob := employees[0]
	assert.Equal(t, "Engineer", bob.Role)
	assert.True(t, bob.BaseSalary.Equal(decimal.NewFromInt(3000)))
	assert.Equal(t, employee.StatusActive, bob.Status)

	alice := employees[1]
	assert.Equal(t, "Staff", alice.Role)
	assert.Equal(t, "General", alice.Department)
	assert.True(t, alice.BaseSalary.IsZero())
	assert.Equal(t, employee.StatusOnLeave, alice.Status)
}

func TestImport_RejectsNamelessAndBadSalary(t *testing.T) {
	svc, repo := setupTestService(t)

	csv := "Name,Salary,Status\n" +
		",3000,active\n" + // no name, dropped
		"Carol,-500,active\n" + // negative salary clamps to zero
		"Dave,lots,active\n" // non-numeric salary clamps to zero

	result, err := svc.Import(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Accepted)
	assert.Equal(t, 1, result.Rejected)

	employees, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.True(t, employees[0].BaseSalary.IsZero())
	assert.True(t, employees[1].BaseSalary.IsZero())
}

func TestImport_AppendsToExistingRecords(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()

	existing, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		Name:       "Bob Smith",
		Role:       "Engineer",
		BaseSalary: decimal.NewFromInt(3000),
	})
	require.NoError(t, err)

	csv := "Name\nAlice Wong\n"
	_, err = svc.Import(ctx, strings.NewReader(csv))
	require.NoError(t, err)

	employees, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, existing.ID, employees[0].ID)
	assert.Equal(t, "Alice Wong", employees[1].Name)
}

func TestImport_ParseFailureWritesNothing(t *testing.T) {
	svc, repo := setupTestService(t)

	_, err := svc.Import(context.Background(), strings.NewReader("PK\x03\x04garbage"))
	require.Error(t, err)

	employees, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, employees)
}
