package tui

import (
	"testing"

	"github.com/phrazzld/taskboard/internal/client"
	"github.com/stretchr/testify/assert"
)

func ids(tasks []client.Task) []int64 {
	out := make([]int64, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestPrependTask(t *testing.T) {
	tasks := []client.Task{{ID: 2}, {ID: 1}}

	got := prependTask(tasks, client.Task{ID: 3})

	assert.Equal(t, []int64{3, 2, 1}, ids(got))
	assert.Equal(t, []int64{2, 1}, ids(tasks), "input must not be modified")
}

func TestReplaceTask(t *testing.T) {
	tasks := []client.Task{{ID: 2, Title: "old"}, {ID: 1, Title: "other"}}

	got := replaceTask(tasks, client.Task{ID: 2, Title: "new"})

	assert.Equal(t, "new", got[0].Title)
	assert.Equal(t, "other", got[1].Title)
	assert.Equal(t, "old", tasks[0].Title, "input must not be modified")

	unchanged := replaceTask(tasks, client.Task{ID: 99, Title: "missing"})
	assert.Equal(t, tasks, unchanged)
}

func TestRemoveTask(t *testing.T) {
	tasks := []client.Task{{ID: 3}, {ID: 2}, {ID: 1}}

	assert.Equal(t, []int64{3, 1}, ids(removeTask(tasks, 2)))
	assert.Equal(t, []int64{3, 2, 1}, ids(removeTask(tasks, 42)))
	assert.Empty(t, removeTask(nil, 1))
}

func TestCyclePriority(t *testing.T) {
	assert.Equal(t, "high", cyclePriority("medium", 1))
	assert.Equal(t, "low", cyclePriority("high", 1))
	assert.Equal(t, "high", cyclePriority("low", -1))
	assert.Equal(t, "high", cyclePriority("unknown", 1), "unknown starts from medium")
}
