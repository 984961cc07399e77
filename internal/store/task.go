package store

import (
	"context"

	"github.com/phrazzld/taskboard/internal/domain"
)

// TaskStore defines the interface for task persistence.
type TaskStore interface {
	// List returns every task, newest first (created_at descending).
	// Ties between equal timestamps are broken arbitrarily.
	// An empty store yields an empty, non-nil slice.
	List(ctx context.Context) ([]*domain.Task, error)

	// Create inserts a new task and returns it as stored.
	// The store assigns ID and CreatedAt; Completed starts false.
	Create(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error)

	// Update overlays the non-nil fields of patch onto the task with the given
	// ID and returns the task as stored afterwards. Fields left nil keep their
	// current values. Returns ErrTaskNotFound if no task has that ID.
	Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error)

	// Delete removes the task with the given ID.
	// Returns ErrTaskNotFound if no task has that ID.
	Delete(ctx context.Context, id int64) error
}
