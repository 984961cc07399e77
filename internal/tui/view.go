package tui

import (
	"fmt"
	"strings"

	"github.com/phrazzld/taskboard/internal/client"
)

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Task Manager"))
	b.WriteString("\n\n")

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n\n")
	}

	b.WriteString(m.formView())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading...")
	case len(m.tasks) == 0:
		b.WriteString(mutedStyle.Render("No tasks yet. Add one above!"))
	default:
		for i, task := range m.tasks {
			b.WriteString(m.rowView(i, task))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render(m.helpLine()))
	return b.String()
}

func (m model) formView() string {
	label := func(field formField, text string) string {
		if m.focus == focusForm && m.field == field {
			return activeField.Render(text)
		}
		return labelStyle.Render(text)
	}

	return fmt.Sprintf("%s %s  %s < %s >  %s %s",
		label(fieldTitle, "Title:"), m.titleInput.View(),
		label(fieldPriority, "Priority:"), PriorityStyle(m.priority).Render(m.priority),
		label(fieldDueDate, "Due:"), m.dueInput.View())
}

func (m model) rowView(index int, task client.Task) string {
	check := "[ ]"
	if task.Completed {
		check = "[x]"
	}

	title := task.Title
	if m.editing && m.editID == task.ID {
		title = m.editInput.View()
	} else if task.Completed {
		title = doneStyle.Render(title)
	}

	line := fmt.Sprintf("%s %s  %s", check, title, PriorityStyle(task.Priority).Render(task.Priority))
	if task.DueDate != nil {
		line += "  " + mutedStyle.Render("due "+*task.DueDate)
	}

	if m.focus == focusList && index == m.cursor {
		return selectedStyle.Render(">") + " " + line
	}
	return "  " + line
}

func (m model) helpLine() string {
	switch {
	case m.editing:
		return "enter: save  esc: cancel"
	case m.focus == focusForm:
		return "enter: add task  tab: next field  left/right: priority  esc: back to list"
	default:
		return "j/k: move  x: toggle  e: edit  d: delete  n: new task  r: reload  q: quit"
	}
}
