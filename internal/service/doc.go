// Package service contains the application use cases for task management.
// It turns raw caller input into validated domain values, delegates
// persistence to the store interfaces defined in internal/store, and
// translates store errors into service-level errors that the API layer maps
// onto HTTP responses.
package service
