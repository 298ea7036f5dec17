package task

import (
	"context"

	"github.com/glassdash/crm-backend-go/internal/domain/task"
	"github.com/google/uuid"
)

type TaskServiceImpl struct {
	taskRepo task.Repository
}

func NewTaskService(taskRepo task.Repository) task.Service {
	return &TaskServiceImpl{taskRepo: taskRepo}
}

func (s *TaskServiceImpl) List(ctx context.Context) ([]task.Task, error) {
	return s.taskRepo.List(ctx)
}

func (s *TaskServiceImpl) Create(ctx context.Context, req task.CreateTaskRequest) (task.Task, error) {
	if err := req.Validate(); err != nil {
		return task.Task{}, err
	}

	priority := task.Priority(req.Priority)
	if req.Priority == "" {
		priority = task.PriorityMedium
	}

	newTask := task.Task{
		ID:       uuid.NewString(),
		Title:    req.Title,
		DueDate:  req.DueDate,
		Priority: priority,
		Assignee: req.Assignee,
		Status:   task.StatusPending,
	}

	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return task.Task{}, err
	}
	if err := s.taskRepo.Save(ctx, append(tasks, newTask)); err != nil {
		return task.Task{}, err
	}
	return newTask, nil
}

func (s *TaskServiceImpl) Update(ctx context.Context, id string, req task.UpdateTaskRequest) (task.Task, error) {
	if err := req.Validate(); err != nil {
		return task.Task{}, err
	}

	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return task.Task{}, err
	}

	for i, t := range tasks {
		if t.ID != id {
			continue
		}
		t.Title = req.Title
		t.DueDate = req.DueDate
		t.Assignee = req.Assignee
		if req.Priority != "" {
			t.Priority = task.Priority(req.Priority)
		}
		if req.Progress != nil {
			t.Progress = *req.Progress
		}
		if req.Status != "" {
			t.Status = task.Status(req.Status)
		}
		tasks[i] = t
		if err := s.taskRepo.Save(ctx, tasks); err != nil {
			return task.Task{}, err
		}
		return t, nil
	}
	return task.Task{}, task.ErrTaskNotFound
}

func (s *TaskServiceImpl) Delete(ctx context.Context, id string) error {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return err
	}

	kept := tasks[:0]
	found := false
	for _, t := range tasks {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return task.ErrTaskNotFound
	}
	return s.taskRepo.Save(ctx, kept)
}
