package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Priority is the urgency level of a task.
type Priority string

// Valid priority values.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority is assigned when a task is created without a priority.
const DefaultPriority = PriorityMedium

// MaxTitleLength is the maximum number of characters in a task title.
const MaxTitleLength = 255

// Priorities lists every valid priority, lowest first.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// ParsePriority converts s into a Priority.
// It returns ErrInvalidPriority for anything other than low, medium or high.
func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.Valid() {
		return "", ErrInvalidPriority
	}
	return p, nil
}

// Task is a titled, prioritized, optionally dated to-do item.
// ID and CreatedAt are assigned by the store and never change.
type Task struct {
	ID        int64
	Title     string
	Priority  Priority
	DueDate   *Date
	Completed bool
	CreatedAt time.Time
}

// Validate checks the invariants every stored task must satisfy.
func (t *Task) Validate() error {
	if _, err := normalizeTitle(t.Title); err != nil {
		return err
	}
	if !t.Priority.Valid() {
		return ErrInvalidPriority
	}
	return nil
}

// TaskDraft is the normalized input for creating a task.
type TaskDraft struct {
	Title    string
	Priority Priority
	DueDate  *Date
}

// NewTaskDraft trims the title, applies the default priority when priority is
// empty and parses dueDate when it is non-empty.
func NewTaskDraft(title, priority, dueDate string) (TaskDraft, error) {
	normalized, err := normalizeTitle(title)
	if err != nil {
		return TaskDraft{}, err
	}

	draft := TaskDraft{
		Title:    normalized,
		Priority: DefaultPriority,
	}

	if priority != "" {
		p, err := ParsePriority(priority)
		if err != nil {
			return TaskDraft{}, err
		}
		draft.Priority = p
	}

	if strings.TrimSpace(dueDate) != "" {
		d, err := ParseDate(dueDate)
		if err != nil {
			return TaskDraft{}, err
		}
		draft.DueDate = &d
	}

	return draft, nil
}

// TaskPatch is a partial update. Nil fields keep their current value.
type TaskPatch struct {
	Title     *string
	Priority  *Priority
	DueDate   *Date
	Completed *bool
}

// NewTaskPatch builds a patch from optional raw fields.
// A supplied title is trimmed and must not be blank. An empty due date string
// is treated the same as an omitted one.
func NewTaskPatch(title, priority, dueDate *string, completed *bool) (TaskPatch, error) {
	var patch TaskPatch

	if title != nil {
		normalized, err := normalizeTitle(*title)
		if err != nil {
			return TaskPatch{}, err
		}
		patch.Title = &normalized
	}

	if priority != nil {
		p, err := ParsePriority(*priority)
		if err != nil {
			return TaskPatch{}, err
		}
		patch.Priority = &p
	}

	if dueDate != nil && strings.TrimSpace(*dueDate) != "" {
		d, err := ParseDate(*dueDate)
		if err != nil {
			return TaskPatch{}, err
		}
		patch.DueDate = &d
	}

	if completed != nil {
		c := *completed
		patch.Completed = &c
	}

	return patch, nil
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Priority == nil && p.DueDate == nil && p.Completed == nil
}

// Apply returns a copy of t with the supplied fields overlaid.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DueDate != nil {
		d := *p.DueDate
		t.DueDate = &d
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	return t
}

func normalizeTitle(title string) (string, error) {
	// Postgres text rejects NUL bytes and invalid UTF-8.
	if !utf8.ValidString(title) || strings.ContainsRune(title, 0) {
		return "", ErrTitleInvalid
	}
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", ErrTitleRequired
	}
	if utf8.RuneCountInString(trimmed) > MaxTitleLength {
		return "", ErrTitleTooLong
	}
	return trimmed, nil
}
