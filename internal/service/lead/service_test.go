package lead

import (
	"context"
	"strings"
	"testing"

	"github.com/glassdash/crm-backend-go/internal/domain/lead"
	"github.com/glassdash/crm-backend-go/internal/pkg/kvstore"
	"github.com/glassdash/crm-backend-go/internal/repository/kv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestService(t *testing.T) (lead.Service, lead.Repository) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	repo := kv.NewLeadRepository(store)
	return NewLeadService(repo), repo
}

func TestImport_MapsRows(t *testing.T) {
	svc, repo := setupTestService(t)

	csv := "Name,Email,Value,Status\n" +
		"Globex,sales@globex.test,12500.50,Qualified\n" +
		"Initech,,not a number,qualified\n" +
		",,,Lost\n"

	result, err := svc.Import(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 3, result.Accepted)
	assert.Equal(t, "Imported 3 leads", result.Message)

	leads, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, leads, 3)

	assert.True(t, leads[0].Value.Equal(decimal.RequireFromString("12500.50")))
	assert.Equal(t, lead.StatusQualified, leads[0].Status)

	// Stage names must match a pipeline column exactly; "qualified" does
	// not, so the lead enters at the top of the board.
	assert.True(t, leads[1].Value.IsZero())
	assert.Equal(t, lead.StatusNew, leads[1].Status)

	assert.Equal(t, "Unknown Lead", leads[2].Name)
	assert.Equal(t, lead.StatusNew, leads[2].Status)
}

func TestUpdateStatus(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, lead.CreateLeadRequest{
		Name:  "Globex",
		Value: decimal.NewFromInt(5000),
	})
	require.NoError(t, err)
	assert.Equal(t, lead.StatusNew, created.Status)

	moved, err := svc.UpdateStatus(ctx, created.ID, lead.UpdateLeadStatusRequest{Status: string(lead.StatusContacted)})
	require.NoError(t, err)
	assert.Equal(t, lead.StatusContacted, moved.Status)

	_, err = svc.UpdateStatus(ctx, created.ID, lead.UpdateLeadStatusRequest{Status: "Lost"})
	assert.Error(t, err)

	_, err = svc.UpdateStatus(ctx, "ghost", lead.UpdateLeadStatusRequest{Status: string(lead.StatusConverted)})
	assert.ErrorIs(t, err, lead.ErrLeadNotFound)
}

func TestDelete(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, lead.CreateLeadRequest{Name: "Globex"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	leads, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, leads)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID), lead.ErrLeadNotFound)
}
