//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/taskboard/internal/domain"
	"github.com/phrazzld/taskboard/internal/platform/postgres"
	"github.com/phrazzld/taskboard/internal/store"
	"github.com/phrazzld/taskboard/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func mustDraft(t *testing.T, title, priority, due string) domain.TaskDraft {
	t.Helper()
	draft, err := domain.NewTaskDraft(title, priority, due)
	require.NoError(t, err)
	return draft
}

// insertTaskAt inserts a row with an explicit created_at. NOW() is fixed for
// the whole transaction, so ordering tests need distinct timestamps.
func insertTaskAt(t *testing.T, tx *sql.Tx, title string, createdAt time.Time) int64 {
	t.Helper()
	var id int64
	err := tx.QueryRow(
		`INSERT INTO tasks (title, created_at) VALUES ($1, $2) RETURNING id`,
		title, createdAt,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestPostgresTaskStore_Create(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	t.Run("defaults", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			taskStore := postgres.NewPostgresTaskStore(tx, nil)

			task, err := taskStore.Create(testContext(t), mustDraft(t, "  Buy milk  ", "", ""))

			require.NoError(t, err)
			assert.Positive(t, task.ID)
			assert.Equal(t, "Buy milk", task.Title)
			assert.Equal(t, domain.PriorityMedium, task.Priority)
			assert.Nil(t, task.DueDate)
			assert.False(t, task.Completed)
			assert.False(t, task.CreatedAt.IsZero())
		})
	})

	t.Run("all fields", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			taskStore := postgres.NewPostgresTaskStore(tx, nil)

			task, err := taskStore.Create(testContext(t), mustDraft(t, "Ship release", "high", "2026-12-31"))

			require.NoError(t, err)
			assert.Equal(t, domain.PriorityHigh, task.Priority)
			require.NotNil(t, task.DueDate)
			assert.Equal(t, "2026-12-31", task.DueDate.String())
		})
	})

	t.Run("ids are unique", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			taskStore := postgres.NewPostgresTaskStore(tx, nil)
			ctx := testContext(t)

			first, err := taskStore.Create(ctx, mustDraft(t, "one", "", ""))
			require.NoError(t, err)
			second, err := taskStore.Create(ctx, mustDraft(t, "two", "", ""))
			require.NoError(t, err)

			assert.NotEqual(t, first.ID, second.ID)
		})
	})

	t.Run("blank title rejected by schema", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			taskStore := postgres.NewPostgresTaskStore(tx, nil)

			_, err := taskStore.Create(testContext(t), domain.TaskDraft{Title: "   ", Priority: domain.PriorityLow})

			require.Error(t, err)
			assert.ErrorIs(t, err, store.ErrInvalidEntity)
		})
	})

	t.Run("overlong title rejected by schema", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			taskStore := postgres.NewPostgresTaskStore(tx, nil)

			_, err := taskStore.Create(testContext(t), domain.TaskDraft{
				Title:    strings.Repeat("x", domain.MaxTitleLength+1),
				Priority: domain.PriorityLow,
			})

			assert.ErrorIs(t, err, store.ErrInvalidEntity)
		})
	})
}

func TestPostgresTaskStore_List(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		_, err := tx.Exec(`DELETE FROM tasks`)
		require.NoError(t, err)

		taskStore := postgres.NewPostgresTaskStore(tx, nil)
		ctx := testContext(t)

		empty, err := taskStore.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Empty(t, empty)

		base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		oldest := insertTaskAt(t, tx, "oldest", base)
		newest := insertTaskAt(t, tx, "newest", base.Add(2*time.Hour))
		middle := insertTaskAt(t, tx, "middle", base.Add(time.Hour))

		tasks, err := taskStore.List(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 3)
		assert.Equal(t, []int64{newest, middle, oldest}, []int64{tasks[0].ID, tasks[1].ID, tasks[2].ID})
	})
}

func TestPostgresTaskStore_Update(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	t.Run("single field leaves the rest unchanged", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			taskStore := postgres.NewPostgresTaskStore(tx, nil)
			ctx := testContext(t)

			created, err := taskStore.Create(ctx, mustDraft(t, "Write report", "low", "2026-03-01"))
			require.NoError(t, err)

			done := true
			updated, err := taskStore.Update(ctx, created.ID, domain.TaskPatch{Completed: &done})

			require.NoError(t, err)
			assert.True(t, updated.Completed)
			assert.Equal(t, created.Title, updated.Title)
			assert.Equal(t, created.Priority, updated.Priority)
			assert.Equal(t, created.DueDate, updated.DueDate)
			assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
		})
	})

	t.Run("all fields", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			taskStore := postgres.NewPostgresTaskStore(tx, nil)
			ctx := testContext(t)

			created, err := taskStore.Create(ctx, mustDraft(t, "Draft", "", ""))
			require.NoError(t, err)

			title, priority, due := "Final", "high", "2026-06-15"
			done := true
			patch, err := domain.NewTaskPatch(&title, &priority, &due, &done)
			require.NoError(t, err)

			updated, err := taskStore.Update(ctx, created.ID, patch)

			require.NoError(t, err)
			assert.Equal(t, "Final", updated.Title)
			assert.Equal(t, domain.PriorityHigh, updated.Priority)
			require.NotNil(t, updated.DueDate)
			assert.Equal(t, "2026-06-15", updated.DueDate.String())
			assert.True(t, updated.Completed)
		})
	})

	t.Run("empty patch returns the current task", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			taskStore := postgres.NewPostgresTaskStore(tx, nil)
			ctx := testContext(t)

			created, err := taskStore.Create(ctx, mustDraft(t, "Unchanged", "", ""))
			require.NoError(t, err)

			updated, err := taskStore.Update(ctx, created.ID, domain.TaskPatch{})

			require.NoError(t, err)
			assert.Equal(t, created.Title, updated.Title)
		})
	})

	done := true
	missing := []struct {
		name  string
		id    int64
		patch domain.TaskPatch
	}{
		{name: "missing id", id: 999999999, patch: domain.TaskPatch{Completed: &done}},
		{name: "missing id above int4 range", id: math.MaxInt32 + 1, patch: domain.TaskPatch{Completed: &done}},
		{name: "missing id at int64 max", id: math.MaxInt64, patch: domain.TaskPatch{Completed: &done}},
		{name: "empty patch on missing id", id: math.MaxInt32 + 1, patch: domain.TaskPatch{}},
	}

	for _, tt := range missing {
		t.Run(tt.name, func(t *testing.T) {
			testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
				taskStore := postgres.NewPostgresTaskStore(tx, nil)

				_, err := taskStore.Update(testContext(t), tt.id, tt.patch)

				assert.ErrorIs(t, err, store.ErrTaskNotFound)
			})
		})
	}
}

func TestPostgresTaskStore_Delete(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		taskStore := postgres.NewPostgresTaskStore(tx, nil)
		ctx := testContext(t)

		created, err := taskStore.Create(ctx, mustDraft(t, "Temporary", "", ""))
		require.NoError(t, err)

		require.NoError(t, taskStore.Delete(ctx, created.ID))

		tasks, err := taskStore.List(ctx)
		require.NoError(t, err)
		for _, task := range tasks {
			assert.NotEqual(t, created.ID, task.ID)
		}

		err = taskStore.Delete(ctx, created.ID)
		assert.ErrorIs(t, err, store.ErrTaskNotFound, "deleting twice should report not found")
	})

	missing := []struct {
		name string
		id   int64
	}{
		{name: "missing id", id: 999999999},
		{name: "missing id above int4 range", id: math.MaxInt32 + 1},
		{name: "missing id at int64 max", id: math.MaxInt64},
	}

	for _, tt := range missing {
		t.Run(tt.name, func(t *testing.T) {
			testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
				taskStore := postgres.NewPostgresTaskStore(tx, nil)

				err := taskStore.Delete(testContext(t), tt.id)

				assert.ErrorIs(t, err, store.ErrTaskNotFound)
			})
		})
	}
}
