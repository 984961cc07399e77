// Package store defines the persistence contract for tasks. Implementations
// (see internal/platform/postgres) keep the database details out of the
// service and API layers.
package store
