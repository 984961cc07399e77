package tui

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/phrazzld/taskboard/internal/client"
)

// Messages shown when a request fails. The previous screen state is kept.
const (
	errLoadTasks  = "Failed to load tasks"
	errCreateTask = "Failed to create task"
	errUpdateTask = "Failed to update task"
	errDeleteTask = "Failed to delete task"
)

const defaultPriority = "medium"

var priorities = []string{"low", "medium", "high"}

// taskAPI is the subset of *client.Client the UI needs.
type taskAPI interface {
	ListTasks(ctx context.Context) ([]client.Task, error)
	CreateTask(ctx context.Context, req client.CreateTaskRequest) (*client.Task, error)
	UpdateTask(ctx context.Context, id int64, req client.UpdateTaskRequest) (*client.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

type focusArea int

const (
	focusList focusArea = iota
	focusForm
)

type formField int

const (
	fieldTitle formField = iota
	fieldPriority
	fieldDueDate
	fieldCount
)

type tasksLoadedMsg struct {
	tasks []client.Task
	err   error
}

type taskCreatedMsg struct {
	task *client.Task
	err  error
}

type taskUpdatedMsg struct {
	task *client.Task
	err  error
}

type taskDeletedMsg struct {
	id  int64
	err error
}

type model struct {
	ctx    context.Context
	client taskAPI
	logger *slog.Logger

	width  int
	height int

	tasks   []client.Task
	cursor  int
	loading bool
	errMsg  string
	focus   focusArea

	field      formField
	titleInput textinput.Model
	dueInput   textinput.Model
	priority   string

	editing   bool
	editID    int64
	editInput textinput.Model
}

func newModel(ctx context.Context, api taskAPI, logger *slog.Logger) model {
	title := textinput.New()
	title.Placeholder = "What needs to be done?"
	title.Prompt = ""
	title.CharLimit = 255

	due := textinput.New()
	due.Placeholder = "YYYY-MM-DD"
	due.Prompt = ""
	due.CharLimit = 10

	edit := textinput.New()
	edit.Prompt = ""
	edit.CharLimit = 255

	return model{
		ctx:        ctx,
		client:     api,
		logger:     logger,
		loading:    true,
		focus:      focusList,
		titleInput: title,
		dueInput:   due,
		priority:   defaultPriority,
		editInput:  edit,
	}
}

func (m model) Init() tea.Cmd {
	return m.loadTasksCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tasksLoadedMsg:
		return m.handleTasksLoaded(msg), nil
	case taskCreatedMsg:
		return m.handleTaskCreated(msg), nil
	case taskUpdatedMsg:
		return m.handleTaskUpdated(msg), nil
	case taskDeletedMsg:
		return m.handleTaskDeleted(msg), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleTasksLoaded(msg tasksLoadedMsg) model {
	m.loading = false
	if msg.err != nil {
		m.logger.Error("failed to load tasks", "error", msg.err)
		m.errMsg = errLoadTasks
		return m
	}
	m.tasks = msg.tasks
	m.errMsg = ""
	m.clampCursor()
	return m
}

func (m model) handleTaskCreated(msg taskCreatedMsg) model {
	if msg.err != nil {
		m.logger.Error("failed to create task", "error", msg.err)
		m.errMsg = errCreateTask
		return m
	}
	hadTasks := len(m.tasks) > 0
	m.tasks = prependTask(m.tasks, *msg.task)
	// Keep the selection on the same row it was on.
	if hadTasks {
		m.cursor++
	}
	m.clampCursor()
	return m
}

func (m model) handleTaskUpdated(msg taskUpdatedMsg) model {
	if msg.err != nil {
		m.logger.Error("failed to update task", "error", msg.err)
		m.errMsg = errUpdateTask
		return m
	}
	m.tasks = replaceTask(m.tasks, *msg.task)
	return m
}

func (m model) handleTaskDeleted(msg taskDeletedMsg) model {
	if msg.err != nil {
		m.logger.Error("failed to delete task", "error", msg.err, "task_id", msg.id)
		m.errMsg = errDeleteTask
		return m
	}
	m.tasks = removeTask(m.tasks, msg.id)
	if m.editing && m.editID == msg.id {
		m.stopEditing()
	}
	m.clampCursor()
	return m
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.editing {
		return m.handleEditKey(msg)
	}
	if m.focus == focusForm {
		return m.handleFormKey(msg)
	}
	return m.handleListKey(msg)
}

func (m model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "tab", "n", "a":
		m.focus = focusForm
		cmd := m.setField(fieldTitle)
		return m, cmd
	case "x", " ", "space":
		task, ok := m.selected()
		if !ok {
			return m, nil
		}
		completed := !task.Completed
		return m, m.updateTaskCmd(task.ID, client.UpdateTaskRequest{Completed: &completed})
	case "e", "enter":
		task, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.editing = true
		m.editID = task.ID
		m.editInput.SetValue(task.Title)
		m.editInput.CursorEnd()
		cmd := m.editInput.Focus()
		return m, cmd
	case "d", "delete":
		task, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, m.deleteTaskCmd(task.ID)
	case "r":
		return m, m.loadTasksCmd()
	}
	return m, nil
}

func (m model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		title := strings.TrimSpace(m.editInput.Value())
		if title == "" {
			return m, nil
		}
		id := m.editID
		m.stopEditing()
		return m, m.updateTaskCmd(id, client.UpdateTaskRequest{Title: &title})
	case "esc":
		m.stopEditing()
		return m, nil
	case "up", "down", "tab", "shift+tab":
		// Moving focus away commits the edit.
		var commit tea.Cmd
		m, commit = m.blurEdit()
		next, cmd := m.handleListKey(msg)
		return next, tea.Batch(commit, cmd)
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

// blurEdit leaves edit mode, committing a non-blank title.
func (m model) blurEdit() (model, tea.Cmd) {
	title := strings.TrimSpace(m.editInput.Value())
	id := m.editID
	m.stopEditing()
	if title == "" {
		return m, nil
	}
	return m, m.updateTaskCmd(id, client.UpdateTaskRequest{Title: &title})
}

func (m *model) stopEditing() {
	m.editing = false
	m.editID = 0
	m.editInput.Blur()
	m.editInput.Reset()
}

func (m model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.blurForm()
		m.focus = focusList
		return m, nil
	case "enter":
		return m.submitForm()
	case "tab":
		cmd := m.setField((m.field + 1) % fieldCount)
		return m, cmd
	case "shift+tab":
		cmd := m.setField((m.field + fieldCount - 1) % fieldCount)
		return m, cmd
	}

	switch m.field {
	case fieldPriority:
		switch msg.String() {
		case "left", "h":
			m.priority = cyclePriority(m.priority, -1)
		case "right", "l", " ", "space":
			m.priority = cyclePriority(m.priority, 1)
		}
		return m, nil
	case fieldDueDate:
		var cmd tea.Cmd
		m.dueInput, cmd = m.dueInput.Update(msg)
		return m, cmd
	default:
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(msg)
		return m, cmd
	}
}

// submitForm sends the create request and resets the form. A blank title
// is ignored.
func (m model) submitForm() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.titleInput.Value())
	if title == "" {
		return m, nil
	}
	req := client.CreateTaskRequest{
		Title:    title,
		Priority: m.priority,
		DueDate:  strings.TrimSpace(m.dueInput.Value()),
	}

	m.titleInput.Reset()
	m.dueInput.Reset()
	m.priority = defaultPriority
	focusCmd := m.setField(fieldTitle)

	return m, tea.Batch(focusCmd, m.createTaskCmd(req))
}

func (m *model) setField(field formField) tea.Cmd {
	m.blurForm()
	m.field = field
	switch field {
	case fieldTitle:
		return m.titleInput.Focus()
	case fieldDueDate:
		return m.dueInput.Focus()
	}
	return nil
}

func (m *model) blurForm() {
	m.titleInput.Blur()
	m.dueInput.Blur()
}

func (m *model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *model) clampCursor() {
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m model) selected() (client.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return client.Task{}, false
	}
	return m.tasks[m.cursor], true
}

func cyclePriority(current string, delta int) string {
	idx := 1
	for i, p := range priorities {
		if p == current {
			idx = i
		}
	}
	idx = (idx + delta + len(priorities)) % len(priorities)
	return priorities[idx]
}

func (m model) loadTasksCmd() tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.client.ListTasks(m.ctx)
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func (m model) createTaskCmd(req client.CreateTaskRequest) tea.Cmd {
	return func() tea.Msg {
		task, err := m.client.CreateTask(m.ctx, req)
		return taskCreatedMsg{task: task, err: err}
	}
}

func (m model) updateTaskCmd(id int64, req client.UpdateTaskRequest) tea.Cmd {
	return func() tea.Msg {
		task, err := m.client.UpdateTask(m.ctx, id, req)
		return taskUpdatedMsg{task: task, err: err}
	}
}

func (m model) deleteTaskCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		return taskDeletedMsg{id: id, err: m.client.DeleteTask(m.ctx, id)}
	}
}
