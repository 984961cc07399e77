package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/phrazzld/taskboard/internal/domain"
	"github.com/phrazzld/taskboard/internal/store"
)

// MockTaskStore implements store.TaskStore in memory.
// IDs start at 1 and every created task gets a strictly later CreatedAt than
// the one before, so List ordering is deterministic.
type MockTaskStore struct {
	// Custom behavior functions; when set they replace the in-memory logic.
	ListFn   func(ctx context.Context) ([]*domain.Task, error)
	CreateFn func(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error)
	UpdateFn func(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error)
	DeleteFn func(ctx context.Context, id int64) error

	mu     sync.Mutex
	tasks  map[int64]domain.Task
	nextID int64
	clock  time.Time
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// NewMockTaskStore returns an empty in-memory store.
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		tasks:  make(map[int64]domain.Task),
		nextID: 1,
		clock:  time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

// Seed stores a task as given, keeping its ID and CreatedAt.
func (m *MockTaskStore) Seed(task domain.Task) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureInit()

	m.tasks[task.ID] = task
	if task.ID >= m.nextID {
		m.nextID = task.ID + 1
	}
	if task.CreatedAt.After(m.clock) {
		m.clock = task.CreatedAt
	}
}

// Get returns a copy of the stored task, if present.
func (m *MockTaskStore) Get(id int64) (domain.Task, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	task, ok := m.tasks[id]
	return task, ok
}

// Len returns the number of stored tasks.
func (m *MockTaskStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

// List implements store.TaskStore.List
func (m *MockTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	tasks := make([]*domain.Task, 0, len(m.tasks))
	for _, task := range m.tasks {
		t := task
		tasks = append(tasks, &t)
	}
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].ID > tasks[j].ID
		}
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return tasks, nil
}

// Create implements store.TaskStore.Create
func (m *MockTaskStore) Create(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, draft)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureInit()

	priority := draft.Priority
	if priority == "" {
		priority = domain.DefaultPriority
	}

	m.clock = m.clock.Add(time.Second)
	task := domain.Task{
		ID:        m.nextID,
		Title:     draft.Title,
		Priority:  priority,
		DueDate:   copyDate(draft.DueDate),
		CreatedAt: m.clock,
	}
	if err := task.Validate(); err != nil {
		return nil, store.NewStoreError("task", "create", "invalid task", store.ErrInvalidEntity)
	}

	m.nextID++
	m.tasks[task.ID] = task

	out := task
	return &out, nil
}

// Update implements store.TaskStore.Update
func (m *MockTaskStore) Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}

	updated := patch.Apply(current)
	if err := updated.Validate(); err != nil {
		return nil, store.NewStoreError("task", "update", "invalid task", store.ErrInvalidEntity)
	}
	m.tasks[id] = updated

	out := updated
	return &out, nil
}

// Delete implements store.TaskStore.Delete
func (m *MockTaskStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	delete(m.tasks, id)
	return nil
}

func (m *MockTaskStore) ensureInit() {
	if m.tasks == nil {
		m.tasks = make(map[int64]domain.Task)
	}
	if m.nextID == 0 {
		m.nextID = 1
	}
}

func copyDate(d *domain.Date) *domain.Date {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
