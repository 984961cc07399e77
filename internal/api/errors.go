package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/taskboard/internal/api/shared"
	"github.com/phrazzld/taskboard/internal/domain"
	"github.com/phrazzld/taskboard/internal/service"
	"github.com/phrazzld/taskboard/internal/store"
)

// Client-facing messages.
const (
	msgTaskNotFound      = "Task not found"
	msgTitleRequired     = "Title is required"
	msgInvalidFormat     = "Invalid request format"
	msgFailedLoadTasks   = "Failed to load tasks"
	msgFailedCreateTask  = "Failed to create task"
	msgFailedUpdateTask  = "Failed to update task"
	msgFailedDeleteTask  = "Failed to delete task"
	msgUnexpectedFailure = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrNotFound),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return msgUnexpectedFailure
	}

	switch {
	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrNotFound),
		errors.Is(err, domain.ErrInvalidID):
		return msgTaskNotFound

	case errors.Is(err, domain.ErrTitleRequired):
		return msgTitleRequired

	case errors.Is(err, domain.ErrTitleTooLong):
		return fmt.Sprintf("Title must be at most %d characters", domain.MaxTitleLength)

	case errors.Is(err, domain.ErrTitleInvalid):
		return "Title contains invalid characters"

	case errors.Is(err, domain.ErrInvalidPriority):
		return "Priority must be one of low, medium, high"

	case errors.Is(err, domain.ErrInvalidDate):
		return "Due date must be a valid date (YYYY-MM-DD)"

	case errors.Is(err, domain.ErrValidation):
		return "Validation error"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid task data"

	default:
		return msgUnexpectedFailure
	}
}

// HandleAPIError maps err to a status code and safe message and writes the
// error response. failureMessage replaces the generic text for 5xx responses.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, failureMessage string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && failureMessage != "" {
		message = failureMessage
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'UpdateTaskRequest.priority' Error:Field validation for 'priority' failed on the 'oneof' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "max":
		return "too long"
	case "oneof":
		return "must be one of low, medium, high"
	default:
		return "validation failed"
	}
}
