package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaskDraft(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		title        string
		priority     string
		dueDate      string
		wantTitle    string
		wantPriority Priority
		wantDue      string
		wantErr      error
	}{
		{
			name:         "title only uses defaults",
			title:        "Simple task",
			wantTitle:    "Simple task",
			wantPriority: PriorityMedium,
		},
		{
			name:         "title is trimmed",
			title:        "  Trimmed task  ",
			wantTitle:    "Trimmed task",
			wantPriority: PriorityMedium,
		},
		{
			name:         "all fields",
			title:        "New task",
			priority:     "high",
			dueDate:      "2026-03-01",
			wantTitle:    "New task",
			wantPriority: PriorityHigh,
			wantDue:      "2026-03-01",
		},
		{
			name:         "timestamp due date keeps the written date",
			title:        "Browser task",
			dueDate:      "2026-06-15T00:00:00.000Z",
			wantTitle:    "Browser task",
			wantPriority: PriorityMedium,
			wantDue:      "2026-06-15",
		},
		{
			name:    "empty title",
			title:   "",
			wantErr: ErrTitleRequired,
		},
		{
			name:    "whitespace title",
			title:   "   ",
			wantErr: ErrTitleRequired,
		},
		{
			name:    "title too long",
			title:   strings.Repeat("x", MaxTitleLength+1),
			wantErr: ErrTitleTooLong,
		},
		{
			name:    "title with NUL byte",
			title:   "Buy\x00 milk",
			wantErr: ErrTitleInvalid,
		},
		{
			name:    "title that is only a NUL byte",
			title:   "\x00",
			wantErr: ErrTitleInvalid,
		},
		{
			name:    "title with invalid UTF-8",
			title:   "Buy \xff milk",
			wantErr: ErrTitleInvalid,
		},
		{
			name:         "title padded with unicode whitespace",
			title:        "\u00a0Call Bob\u2003",
			wantTitle:    "Call Bob",
			wantPriority: PriorityMedium,
		},
		{
			name:     "unknown priority",
			title:    "Task",
			priority: "urgent",
			wantErr:  ErrInvalidPriority,
		},
		{
			name:    "bad due date",
			title:   "Task",
			dueDate: "2026-13-40",
			wantErr: ErrInvalidDate,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			draft, err := NewTaskDraft(tc.title, tc.priority, tc.dueDate)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
				assert.True(t, errors.Is(err, ErrValidation), "validation errors wrap ErrValidation")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantTitle, draft.Title)
			assert.Equal(t, tc.wantPriority, draft.Priority)
			if tc.wantDue == "" {
				assert.Nil(t, draft.DueDate)
			} else {
				require.NotNil(t, draft.DueDate)
				assert.Equal(t, tc.wantDue, draft.DueDate.String())
			}
		})
	}
}

func TestNewTaskPatch(t *testing.T) {
	t.Parallel()

	str := func(s string) *string { return &s }
	boolean := func(b bool) *bool { return &b }

	t.Run("empty patch", func(t *testing.T) {
		patch, err := NewTaskPatch(nil, nil, nil, nil)
		require.NoError(t, err)
		assert.True(t, patch.IsEmpty())
	})

	t.Run("completed only", func(t *testing.T) {
		patch, err := NewTaskPatch(nil, nil, nil, boolean(true))
		require.NoError(t, err)
		assert.Nil(t, patch.Title)
		assert.Nil(t, patch.Priority)
		assert.Nil(t, patch.DueDate)
		require.NotNil(t, patch.Completed)
		assert.True(t, *patch.Completed)
	})

	t.Run("title is trimmed", func(t *testing.T) {
		patch, err := NewTaskPatch(str("  Renamed "), nil, nil, nil)
		require.NoError(t, err)
		require.NotNil(t, patch.Title)
		assert.Equal(t, "Renamed", *patch.Title)
	})

	t.Run("blank title is rejected", func(t *testing.T) {
		_, err := NewTaskPatch(str("  "), nil, nil, nil)
		assert.ErrorIs(t, err, ErrTitleRequired)
	})

	t.Run("empty due date is ignored", func(t *testing.T) {
		patch, err := NewTaskPatch(nil, nil, str(""), nil)
		require.NoError(t, err)
		assert.Nil(t, patch.DueDate)
		assert.True(t, patch.IsEmpty())
	})

	t.Run("empty priority is rejected", func(t *testing.T) {
		_, err := NewTaskPatch(nil, str(""), nil, nil)
		assert.ErrorIs(t, err, ErrInvalidPriority)
	})

	t.Run("all fields", func(t *testing.T) {
		patch, err := NewTaskPatch(str("T"), str("low"), str("2026-01-02"), boolean(false))
		require.NoError(t, err)
		assert.Equal(t, "T", *patch.Title)
		assert.Equal(t, PriorityLow, *patch.Priority)
		assert.Equal(t, "2026-01-02", patch.DueDate.String())
		assert.False(t, *patch.Completed)
	})
}

func TestTaskPatchApply(t *testing.T) {
	t.Parallel()

	due := NewDate(2026, time.June, 15)
	created := time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)
	original := Task{
		ID:        7,
		Title:     "Write report",
		Priority:  PriorityHigh,
		DueDate:   &due,
		CreatedAt: created,
	}

	done := true
	updated := TaskPatch{Completed: &done}.Apply(original)

	assert.Equal(t, int64(7), updated.ID)
	assert.Equal(t, "Write report", updated.Title)
	assert.Equal(t, PriorityHigh, updated.Priority)
	require.NotNil(t, updated.DueDate)
	assert.Equal(t, "2026-06-15", updated.DueDate.String())
	assert.True(t, updated.Completed)
	assert.Equal(t, created, updated.CreatedAt)
	assert.False(t, original.Completed, "Apply must not mutate its argument")
}

func TestTaskValidate(t *testing.T) {
	t.Parallel()

	valid := Task{ID: 1, Title: "Ok", Priority: PriorityLow}
	assert.NoError(t, valid.Validate())

	blank := Task{ID: 1, Title: " ", Priority: PriorityLow}
	assert.ErrorIs(t, blank.Validate(), ErrTitleRequired)

	badPriority := Task{ID: 1, Title: "Ok", Priority: "urgent"}
	assert.ErrorIs(t, badPriority.Validate(), ErrInvalidPriority)
}

func TestParsePriority(t *testing.T) {
	t.Parallel()

	for _, p := range Priorities {
		got, err := ParsePriority(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	_, err := ParsePriority("HIGH")
	assert.ErrorIs(t, err, ErrInvalidPriority)
}
