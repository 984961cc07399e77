package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/taskboard/internal/store"
)

// PostgreSQL error codes
const (
	// checkViolationCode is the PostgreSQL error code for check constraint violations
	checkViolationCode = "23514"

	// notNullViolationCode is the PostgreSQL error code for not null violations
	notNullViolationCode = "23502"

	// stringDataRightTruncationCode is raised when a value exceeds a VARCHAR limit
	stringDataRightTruncationCode = "22001"

	// characterNotInRepertoireCode is raised for NUL bytes and invalid UTF-8 in text
	characterNotInRepertoireCode = "22021"

	// invalidDatetimeFormatCode is raised when a DATE literal cannot be parsed
	invalidDatetimeFormatCode = "22007"

	// datetimeFieldOverflowCode is raised for out-of-range dates such as 2024-02-30
	datetimeFieldOverflowCode = "22008"
)

// MapError maps a database error to an appropriate store error.
// Both the store error and the original error remain visible to errors.Is/As.
// This function should be used in all database operations to ensure consistent error handling.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch {
	case IsCheckConstraintViolation(err):
		return fmt.Errorf(
			"%w: check constraint violation (%s): %w",
			store.ErrInvalidEntity,
			pgErr.ConstraintName,
			err,
		)
	case IsNotNullViolation(err):
		return fmt.Errorf(
			"%w: not null violation (%s): %w",
			store.ErrInvalidEntity,
			pgErr.ColumnName,
			err,
		)
	}

	switch pgErr.Code {
	case stringDataRightTruncationCode:
		return fmt.Errorf("%w: value too long: %w", store.ErrInvalidEntity, err)
	case characterNotInRepertoireCode:
		return fmt.Errorf("%w: invalid character: %w", store.ErrInvalidEntity, err)
	case invalidDatetimeFormatCode, datetimeFieldOverflowCode:
		return fmt.Errorf("%w: invalid date: %w", store.ErrInvalidEntity, err)
	}

	return err
}

// IsCheckConstraintViolation checks if the given error is a PostgreSQL check constraint violation.
func IsCheckConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == checkViolationCode
}

// IsNotNullViolation checks if the given error is a PostgreSQL not null constraint violation.
func IsNotNullViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == notNullViolationCode
}

// IsNotFoundError checks if the given error represents a "not found" scenario.
// This handles both sql.ErrNoRows and errors that are or wrap store.ErrNotFound.
func IsNotFoundError(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, store.ErrNotFound)
}

// CheckRowsAffected examines the number of rows affected by a database operation.
// If no rows were affected it returns notFound, or store.ErrNotFound when
// notFound is nil. A single-row DELETE or UPDATE reports 0 or 1.
func CheckRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return fmt.Errorf("nil result provided to CheckRowsAffected")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		if notFound == nil {
			return store.ErrNotFound
		}
		return notFound
	}

	return nil
}
