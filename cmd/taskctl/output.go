package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/phrazzld/taskboard/internal/client"
	"github.com/phrazzld/taskboard/internal/tui"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func formatTaskTable(tasks []client.Task) string {
	if len(tasks) == 0 {
		return mutedStyle.Render("No tasks yet.") + "\n"
	}

	rows := make([][]string, 0, len(tasks))
	for _, task := range tasks {
		rows = append(rows, []string{
			strconv.FormatInt(task.ID, 10),
			doneMark(task.Completed),
			task.Title,
			task.Priority,
			dueText(task.DueDate),
			task.CreatedAt.Local().Format("2006-01-02 15:04"),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "DONE", "TITLE", "PRIORITY", "DUE", "CREATED").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 3 && row >= 0 && row < len(tasks) {
				return tui.PriorityStyle(tasks[row].Priority).Padding(0, 1)
			}
			return cellStyle
		})

	return t.String() + "\n"
}

func formatTaskDetail(verb string, task client.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s task %d\n", verb, task.ID)
	fmt.Fprintf(&b, "  title:     %s\n", task.Title)
	fmt.Fprintf(&b, "  priority:  %s\n", tui.PriorityStyle(task.Priority).Render(task.Priority))
	fmt.Fprintf(&b, "  due:       %s\n", dueText(task.DueDate))
	fmt.Fprintf(&b, "  completed: %t\n", task.Completed)
	return b.String()
}

func doneMark(completed bool) string {
	if completed {
		return "x"
	}
	return ""
}

func dueText(due *string) string {
	if due == nil {
		return "-"
	}
	return *due
}
