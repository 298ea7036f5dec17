package customer

import (
	"context"
	"strings"
	"testing"

	"github.com/glassdash/crm-backend-go/internal/domain/customer"
	"github.com/glassdash/crm-backend-go/internal/pkg/kvstore"
	"github.com/glassdash/crm-backend-go/internal/repository/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestService(t *testing.T) (customer.Service, customer.Repository) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	repo := kv.NewCustomerRepository(store)
	return NewCustomerService(repo), repo
}

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want customer.Status
	}{
		{"Active", customer.StatusActive},
		{"inactive", customer.StatusInactive},
		{"  LEAD  ", customer.StatusLead},
		{"prospect", customer.StatusActive},
		{"", customer.StatusActive},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, normalizeStatus(tc.raw), "raw=%q", tc.raw)
	}
}

func TestImport_AcceptsEveryRowWithDefaults(t *testing.T) {
	svc, repo := setupTestService(t)

	csv := "Name,Email,Phone,Status\n" +
		"Acme Corp,contact@acme.test,555-0100,inactive\n" +
		",,555-0199,prospect\n"

	result, err := svc.Import(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Accepted)
	assert.Equal(t, 0, result.Rejected)
	assert.Equal(t, "Added 2 customers", result.Message)

	customers, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 2)

	assert.Equal(t, customer.StatusInactive, customers[0].Status)

	fallback := customers[1]
	assert.Equal(t, "Unknown", fallback.Name)
	assert.Equal(t, "no-email@example.com", fallback.Email)
	assert.Equal(t, customer.StatusActive, fallback.Status)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.Create(context.Background(), customer.CreateCustomerRequest{})
	assert.Error(t, err)

	_, err = svc.Create(context.Background(), customer.CreateCustomerRequest{
		Name:  "Acme Corp",
		Email: "not-an-email",
	})
	assert.Error(t, err)
}

func TestUpdateAndDelete(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, customer.CreateCustomerRequest{Name: "Acme Corp"})
	require.NoError(t, err)
	assert.Equal(t, customer.StatusActive, created.Status)

	updated, err := svc.Update(ctx, created.ID, customer.UpdateCustomerRequest{
		Name:   "Acme Corporation",
		Status: string(customer.StatusLead),
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corporation", updated.Name)
	assert.Equal(t, customer.StatusLead, updated.Status)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, customer.ErrCustomerNotFound)
}
