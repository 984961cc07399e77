package mocks

import (
	"context"

	"github.com/phrazzld/taskboard/internal/domain"
	"github.com/phrazzld/taskboard/internal/service"
	"github.com/stretchr/testify/mock"
)

// TestifyMockTaskService is a mock of service.TaskService for use with testify/mock
type TestifyMockTaskService struct {
	mock.Mock
}

var _ service.TaskService = (*TestifyMockTaskService)(nil)

// ListTasks is a mock implementation of service.TaskService.ListTasks
func (m *TestifyMockTaskService) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	args := m.Called(ctx)
	if tasks, ok := args.Get(0).([]*domain.Task); ok {
		return tasks, args.Error(1)
	}
	return nil, args.Error(1)
}

// CreateTask is a mock implementation of service.TaskService.CreateTask
func (m *TestifyMockTaskService) CreateTask(
	ctx context.Context,
	input service.CreateTaskInput,
) (*domain.Task, error) {
	args := m.Called(ctx, input)
	if task, ok := args.Get(0).(*domain.Task); ok {
		return task, args.Error(1)
	}
	return nil, args.Error(1)
}

// UpdateTask is a mock implementation of service.TaskService.UpdateTask
func (m *TestifyMockTaskService) UpdateTask(
	ctx context.Context,
	id int64,
	input service.UpdateTaskInput,
) (*domain.Task, error) {
	args := m.Called(ctx, id, input)
	if task, ok := args.Get(0).(*domain.Task); ok {
		return task, args.Error(1)
	}
	return nil, args.Error(1)
}

// DeleteTask is a mock implementation of service.TaskService.DeleteTask
func (m *TestifyMockTaskService) DeleteTask(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
