package api

import (
	"encoding/json"
	"time"

	"github.com/phrazzld/taskboard/internal/domain"
)

// CreateTaskRequest defines the payload for POST /api/tasks.
// Title is kept raw so a missing, null or non-string title can be reported
// as "Title is required" rather than as a malformed request.
type CreateTaskRequest struct {
	Title    json.RawMessage `json:"title"`
	Priority string          `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate  *string         `json:"due_date"`
}

// UpdateTaskRequest defines the payload for PUT /api/tasks/{id}.
// Omitted and null fields are left unchanged.
type UpdateTaskRequest struct {
	Title     *string `json:"title"`
	Priority  *string `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate   *string `json:"due_date"`
	Completed *bool   `json:"completed"`
}

// TaskResponse is the JSON representation of a task.
type TaskResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Priority  string    `json:"priority"`
	DueDate   *string   `json:"due_date"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

func taskToResponse(task *domain.Task) TaskResponse {
	resp := TaskResponse{
		ID:        task.ID,
		Title:     task.Title,
		Priority:  string(task.Priority),
		Completed: task.Completed,
		CreatedAt: task.CreatedAt,
	}
	if task.DueDate != nil {
		due := task.DueDate.String()
		resp.DueDate = &due
	}
	return resp
}

func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}
