// Package postgres provides the PostgreSQL implementation of the task storage
// interface defined in the internal/store package. It owns the embedded goose
// migrations for the tasks table, maps driver errors onto store errors, and
// converts between database rows and domain tasks.
package postgres
