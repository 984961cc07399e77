package tui

import "github.com/phrazzld/taskboard/internal/client"

// prependTask returns a new slice with task in front of tasks.
func prependTask(tasks []client.Task, task client.Task) []client.Task {
	out := make([]client.Task, 0, len(tasks)+1)
	out = append(out, task)
	return append(out, tasks...)
}

// replaceTask returns a copy of tasks with the entry sharing task's ID
// replaced. Tasks is returned unchanged in content when no ID matches.
func replaceTask(tasks []client.Task, task client.Task) []client.Task {
	out := make([]client.Task, len(tasks))
	copy(out, tasks)
	for i := range out {
		if out[i].ID == task.ID {
			out[i] = task
		}
	}
	return out
}

// removeTask returns a copy of tasks without the entry with the given ID.
func removeTask(tasks []client.Task, id int64) []client.Task {
	out := make([]client.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.ID != id {
			out = append(out, task)
		}
	}
	return out
}
