package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/taskboard/internal/domain"
	"github.com/phrazzld/taskboard/internal/platform/logger"
	"github.com/phrazzld/taskboard/internal/store"
)

const taskColumns = `id, title, priority, due_date, completed, created_at`

const (
	listTasksQuery = `
		SELECT ` + taskColumns + `
		FROM tasks
		ORDER BY created_at DESC`

	insertTaskQuery = `
		INSERT INTO tasks (title, priority, due_date)
		VALUES ($1, $2, $3)
		RETURNING ` + taskColumns

	updateTaskQuery = `
		UPDATE tasks
		SET title     = COALESCE($2::varchar, title),
		    priority  = COALESCE($3::varchar, priority),
		    due_date  = COALESCE($4::date, due_date),
		    completed = COALESCE($5::boolean, completed)
		WHERE id = $1::bigint
		RETURNING ` + taskColumns

	getTaskQuery = `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE id = $1::bigint`

	deleteTaskQuery = `DELETE FROM tasks WHERE id = $1::bigint`
)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the TaskStore interface.
// It accepts a database connection or transaction that should be managed by the caller.
// A nil logger falls back to slog.Default().
func NewPostgresTaskStore(db store.DBTX, l *slog.Logger) *PostgresTaskStore {
	if l == nil {
		l = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: l.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// List implements store.TaskStore.List
func (s *PostgresTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, listTasksQuery)
	if err != nil {
		log.Error("failed to query tasks", slog.String("error", err.Error()))
		return nil, store.NewStoreError("task", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Error("failed to scan task row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("task", "list", "scan failed", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating task rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("task", "list", "row iteration failed", MapError(err))
	}

	log.Debug("listed tasks", slog.Int("count", len(tasks)))
	return tasks, nil
}

// Create implements store.TaskStore.Create
func (s *PostgresTaskStore) Create(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	priority := draft.Priority
	if priority == "" {
		priority = domain.DefaultPriority
	}

	row := s.db.QueryRowContext(ctx, insertTaskQuery,
		draft.Title,
		string(priority),
		dateArg(draft.DueDate),
	)

	task, err := scanTask(row)
	if err != nil {
		log.Error("failed to insert task", slog.String("error", err.Error()))
		return nil, store.NewStoreError("task", "create", "insert failed", MapError(err))
	}

	log.Debug("task created", slog.Int64("task_id", task.ID))
	return task, nil
}

// Update implements store.TaskStore.Update
//
// All supplied fields are applied in a single statement; nil fields are bound
// as NULL and COALESCE keeps the stored value. An empty patch only reads the row.
func (s *PostgresTaskStore) Update(
	ctx context.Context,
	id int64,
	patch domain.TaskPatch,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.Int64("task_id", id))

	var row *sql.Row
	if patch.IsEmpty() {
		row = s.db.QueryRowContext(ctx, getTaskQuery, id)
	} else {
		row = s.db.QueryRowContext(ctx, updateTaskQuery,
			id,
			stringArg(patch.Title),
			priorityArg(patch.Priority),
			dateArg(patch.DueDate),
			boolArg(patch.Completed),
		)
	}

	task, err := scanTask(row)
	if err != nil {
		if IsNotFoundError(err) {
			log.Debug("task not found for update")
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to update task", slog.String("error", err.Error()))
		return nil, store.NewStoreError("task", "update", "update failed", MapError(err))
	}

	log.Debug("task updated")
	return task, nil
}

// Delete implements store.TaskStore.Delete
func (s *PostgresTaskStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.Int64("task_id", id))

	result, err := s.db.ExecContext(ctx, deleteTaskQuery, id)
	if err != nil {
		log.Error("failed to delete task", slog.String("error", err.Error()))
		return store.NewStoreError("task", "delete", "delete failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrTaskNotFound); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			log.Debug("task not found for delete")
			return err
		}
		log.Error("failed to check deleted rows", slog.String("error", err.Error()))
		return store.NewStoreError("task", "delete", "rows affected unavailable", err)
	}

	log.Debug("task deleted")
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		task     domain.Task
		priority string
		dueDate  sql.NullTime
	)

	if err := row.Scan(
		&task.ID,
		&task.Title,
		&priority,
		&dueDate,
		&task.Completed,
		&task.CreatedAt,
	); err != nil {
		return nil, err
	}

	task.Priority = domain.Priority(priority)
	if dueDate.Valid {
		d := domain.DateOf(dueDate.Time)
		task.DueDate = &d
	}

	return &task, nil
}

func stringArg(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func priorityArg(p *domain.Priority) any {
	if p == nil {
		return nil
	}
	return string(*p)
}

func dateArg(d *domain.Date) any {
	if d == nil {
		return nil
	}
	return d.String()
}

func boolArg(b *bool) any {
	if b == nil {
		return nil
	}
	return *b
}
