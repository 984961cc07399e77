// Package api handles incoming HTTP requests for the task API: request
// decoding and validation, error-to-status mapping and response formatting.
// It translates HTTP concerns into calls on service.TaskService and never
// exposes internal error details to clients.
package api
