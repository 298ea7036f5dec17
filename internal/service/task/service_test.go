package task

import (
	"context"
	"testing"

	"github.com/glassdash/crm-backend-go/internal/domain/task"
	"github.com/glassdash/crm-backend-go/internal/pkg/kvstore"
	"github.com/glassdash/crm-backend-go/internal/repository/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestService(t *testing.T) task.Service {
	t.Helper()
	return NewTaskService(kv.NewTaskRepository(kvstore.NewMemoryStore()))
}

func TestTaskLifecycle(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, task.CreateTaskRequest{
		Title:    "Follow up with Acme",
		DueDate:  "2025-07-01",
		Priority: string(task.PriorityHigh),
		Assignee: "Bob",
	})
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, created.Status)
	assert.Equal(t, 0, created.Progress)

	progress := 100
	updated, err := svc.Update(ctx, created.ID, task.UpdateTaskRequest{
		Title:    created.Title,
		DueDate:  created.DueDate,
		Priority: string(created.Priority),
		Assignee: created.Assignee,
		Progress: &progress,
		Status:   string(task.StatusCompleted),
	})
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, updated.Status)
	assert.Equal(t, 100, updated.Progress)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), task.ErrTaskNotFound)
}

func TestTaskValidation(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, task.CreateTaskRequest{})
	assert.Error(t, err)

	_, err = svc.Create(ctx, task.CreateTaskRequest{Title: "X", DueDate: "July 1"})
	assert.Error(t, err)

	_, err = svc.Create(ctx, task.CreateTaskRequest{Title: "X", Priority: "Urgent"})
	assert.Error(t, err)
}
