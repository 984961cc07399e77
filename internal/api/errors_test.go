package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/taskboard/internal/domain"
	"github.com/phrazzld/taskboard/internal/service"
	"github.com/phrazzld/taskboard/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"service not found", service.ErrTaskNotFound, http.StatusNotFound},
		{"store not found", fmt.Errorf("wrapped: %w", store.ErrTaskNotFound), http.StatusNotFound},
		{"invalid id", domain.NewValidationError("id", "has invalid format", domain.ErrInvalidID), http.StatusNotFound},
		{"title required", domain.ErrTitleRequired, http.StatusBadRequest},
		{"title invalid", domain.ErrTitleInvalid, http.StatusBadRequest},
		{"invalid date in service error", service.NewTaskServiceError("create_task", "invalid", domain.ErrInvalidDate), http.StatusBadRequest},
		{"invalid entity", store.NewStoreError("task", "create", "insert failed", store.ErrInvalidEntity), http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"not found", service.ErrTaskNotFound, "Task not found"},
		{"invalid id", domain.ErrInvalidID, "Task not found"},
		{"title required", domain.ErrTitleRequired, "Title is required"},
		{"title too long", domain.ErrTitleTooLong, "Title must be at most 255 characters"},
		{"title invalid", domain.ErrTitleInvalid, "Title contains invalid characters"},
		{"priority", domain.ErrInvalidPriority, "Priority must be one of low, medium, high"},
		{"date", domain.ErrInvalidDate, "Due date must be a valid date (YYYY-MM-DD)"},
		{"generic validation", domain.ErrValidation, "Validation error"},
		{"invalid entity", store.ErrInvalidEntity, "Invalid task data"},
		{"internal details never leak", errors.New("postgres://admin:secret@db/tasks unreachable"), "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	err := errors.New("Key: 'UpdateTaskRequest.priority' Error:Field validation for 'priority' failed on the 'oneof' tag")
	assert.Equal(t, "Invalid priority: must be one of low, medium, high", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("something else")))
}

func TestGetPathIDRejectsMissingParam(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "/api/tasks/", nil)

	_, err := getPathID(req, "id")

	assert.ErrorIs(t, err, domain.ErrInvalidID)
	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "id", validationErr.Field)
}
