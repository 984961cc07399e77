package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/taskboard/internal/domain"
	"github.com/phrazzld/taskboard/internal/platform/logger"
	"github.com/phrazzld/taskboard/internal/store"
)

// CreateTaskInput is the raw input for creating a task.
// Empty Priority means medium; empty DueDate means no due date.
type CreateTaskInput struct {
	Title    string
	Priority string
	DueDate  string
}

// UpdateTaskInput is the raw input for a partial update.
// Nil fields are left unchanged.
type UpdateTaskInput struct {
	Title     *string
	Priority  *string
	DueDate   *string
	Completed *bool
}

// TaskService provides task-related operations
type TaskService interface {
	// ListTasks returns every task, newest first.
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// CreateTask validates the input, applies defaults and stores a new task.
	CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error)

	// UpdateTask applies the supplied fields to an existing task.
	// Returns ErrTaskNotFound if the task does not exist.
	UpdateTask(ctx context.Context, id int64, input UpdateTaskInput) (*domain.Task, error)

	// DeleteTask removes a task.
	// Returns ErrTaskNotFound if the task does not exist.
	DeleteTask(ctx context.Context, id int64) error
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if taskStore is nil.
func NewTaskService(taskStore store.TaskStore, l *slog.Logger) (TaskService, error) {
	if taskStore == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "taskStore cannot be nil",
		}
	}

	if l == nil {
		l = slog.Default()
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		logger:    l.With("component", "task_service"),
	}, nil
}

// ListTasks implements TaskService.ListTasks
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		s.log(ctx).Error("failed to list tasks", "error", err)
		return nil, NewTaskServiceError("list_tasks", "failed to retrieve tasks", err)
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return tasks, nil
}

// CreateTask implements TaskService.CreateTask
func (s *taskServiceImpl) CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	log := s.log(ctx)

	draft, err := domain.NewTaskDraft(input.Title, input.Priority, input.DueDate)
	if err != nil {
		log.Debug("rejected task input", "error", err)
		return nil, NewTaskServiceError("create_task", "invalid task", err)
	}

	task, err := s.taskStore.Create(ctx, draft)
	if err != nil {
		log.Error("failed to create task", "error", err)
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	log.Info("task created", "task_id", task.ID, "priority", task.Priority)
	return task, nil
}

// UpdateTask implements TaskService.UpdateTask
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	id int64,
	input UpdateTaskInput,
) (*domain.Task, error) {
	log := s.log(ctx).With("task_id", id)

	patch, err := domain.NewTaskPatch(input.Title, input.Priority, input.DueDate, input.Completed)
	if err != nil {
		log.Debug("rejected task update", "error", err)
		return nil, NewTaskServiceError("update_task", "invalid task update", err)
	}

	task, err := s.taskStore.Update(ctx, id, patch)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found for update")
		} else {
			log.Error("failed to update task", "error", err)
		}
		return nil, NewTaskServiceError("update_task", "failed to update task", err)
	}

	log.Info("task updated")
	return task, nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	log := s.log(ctx).With("task_id", id)

	if err := s.taskStore.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found for delete")
		} else {
			log.Error("failed to delete task", "error", err)
		}
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	log.Info("task deleted")
	return nil
}

// log prefers the request-scoped logger so entries carry the trace id.
func (s *taskServiceImpl) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}
