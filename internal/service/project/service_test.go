package project

import (
	"context"
	"testing"

	"github.com/glassdash/crm-backend-go/internal/domain/project"
	"github.com/glassdash/crm-backend-go/internal/pkg/kvstore"
	"github.com/glassdash/crm-backend-go/internal/repository/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestService(t *testing.T) project.Service {
	t.Helper()
	return NewProjectService(kv.NewProjectRepository(kvstore.NewMemoryStore()))
}

func TestProjectLifecycle(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, project.CreateProjectRequest{
		Name:   "Website Revamp",
		Client: "Acme Corp",
	})
	require.NoError(t, err)
	assert.Equal(t, project.StatusInProgress, created.Status)

	progress := 60
	updated, err := svc.Update(ctx, created.ID, project.UpdateProjectRequest{
		Name:     "Website Revamp",
		Client:   "Acme Corp",
		Status:   string(project.StatusOnHold),
		Progress: &progress,
	})
	require.NoError(t, err)
	assert.Equal(t, project.StatusOnHold, updated.Status)
	assert.Equal(t, 60, updated.Progress)

	projects, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), project.ErrProjectNotFound)
}

func TestProjectValidation(t *testing.T) {
	svc := setupTestService(t)

	_, err := svc.Create(context.Background(), project.CreateProjectRequest{Client: "Acme"})
	assert.Error(t, err)

	_, err = svc.Create(context.Background(), project.CreateProjectRequest{Name: "X", Status: "Shipped"})
	assert.Error(t, err)
}
