package postgres_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/taskboard/internal/platform/postgres"
	"github.com/phrazzld/taskboard/internal/store"
	"github.com/stretchr/testify/assert"
)

func newPgError(code string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           code,
		Message:        "error message",
		Detail:         "error details",
		SchemaName:     "public",
		TableName:      "tasks",
		ColumnName:     "title",
		ConstraintName: "tasks_title_check",
	}
}

// MockResult implements sql.Result for testing
type MockResult struct {
	rowsAffected int64
	err          error
}

func (m MockResult) LastInsertId() (int64, error) {
	return 0, m.err
}

func (m MockResult) RowsAffected() (int64, error) {
	return m.rowsAffected, m.err
}

func TestIsCheckConstraintViolation(t *testing.T) {
	t.Parallel()

	assert.False(t, postgres.IsCheckConstraintViolation(nil))
	assert.False(t, postgres.IsCheckConstraintViolation(errors.New("generic error")))
	assert.True(t, postgres.IsCheckConstraintViolation(newPgError("23514")))
	assert.True(t, postgres.IsCheckConstraintViolation(fmt.Errorf("wrapped: %w", newPgError("23514"))))
	assert.False(t, postgres.IsCheckConstraintViolation(newPgError("23502")))
}

func TestIsNotNullViolation(t *testing.T) {
	t.Parallel()

	assert.False(t, postgres.IsNotNullViolation(nil))
	assert.True(t, postgres.IsNotNullViolation(newPgError("23502")))
	assert.False(t, postgres.IsNotNullViolation(newPgError("23514")))
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"sql.ErrNoRows", sql.ErrNoRows, true},
		{"store.ErrNotFound", store.ErrNotFound, true},
		{"store.ErrTaskNotFound", store.ErrTaskNotFound, true},
		{"wrapped ErrNoRows", fmt.Errorf("query: %w", sql.ErrNoRows), true},
		{"other error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, postgres.IsNotFoundError(tt.err))
		})
	}
}

// TestCheckRowsAffected tests the CheckRowsAffected function
func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		result   sql.Result
		notFound error
		wantErr  error
		wantText string
	}{
		{
			name:   "one row affected",
			result: MockResult{rowsAffected: 1},
		},
		{
			name:     "no rows with specific error",
			result:   MockResult{rowsAffected: 0},
			notFound: store.ErrTaskNotFound,
			wantErr:  store.ErrTaskNotFound,
		},
		{
			name:    "no rows with default error",
			result:  MockResult{rowsAffected: 0},
			wantErr: store.ErrNotFound,
		},
		{
			name:     "rows affected fails",
			result:   MockResult{err: errors.New("driver failure")},
			wantText: "failed to get rows affected",
		},
		{
			name:     "nil result",
			result:   nil,
			wantText: "nil result",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := postgres.CheckRowsAffected(tt.result, tt.notFound)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantText != "":
				assert.ErrorContains(t, err, tt.wantText)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

// TestMapError tests the MapError function
func TestMapError(t *testing.T) {
	t.Parallel()

	generic := errors.New("some other error")

	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantRaw bool
	}{
		{name: "no rows", err: sql.ErrNoRows, wantIs: store.ErrNotFound},
		{name: "check violation", err: newPgError("23514"), wantIs: store.ErrInvalidEntity},
		{name: "not null violation", err: newPgError("23502"), wantIs: store.ErrInvalidEntity},
		{name: "value too long", err: newPgError("22001"), wantIs: store.ErrInvalidEntity},
		{name: "NUL byte in text", err: newPgError("22021"), wantIs: store.ErrInvalidEntity},
		{name: "wrapped check violation", err: fmt.Errorf("insert: %w", newPgError("23514")), wantIs: store.ErrInvalidEntity},
		{name: "invalid date format", err: newPgError("22007"), wantIs: store.ErrInvalidEntity},
		{name: "date out of range", err: newPgError("22008"), wantIs: store.ErrInvalidEntity},
		{name: "unmapped pg error", err: newPgError("40001"), wantRaw: true},
		{name: "generic error", err: generic, wantRaw: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := postgres.MapError(tt.err)

			if tt.wantRaw {
				assert.Same(t, tt.err, result)
				return
			}
			assert.ErrorIs(t, result, tt.wantIs)
			assert.ErrorIs(t, result, tt.err, "the original error should stay inspectable")
		})
	}

	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, postgres.MapError(nil))
	})
}
