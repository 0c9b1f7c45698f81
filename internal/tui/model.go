package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"caretrack/internal/adapter/http/dto"
	"caretrack/internal/core/domain"
	"caretrack/internal/grid"
)

// TaskClient is the slice of the HTTP client the grid needs.
type TaskClient interface {
	ListTasks(ctx context.Context, page, limit int) ([]domain.Task, domain.PaginationInfo, error)
	CreateTask(ctx context.Context, req dto.CreateTaskRequest) (domain.Task, error)
	UpdateTask(ctx context.Context, id string, req dto.UpdateTaskRequest) (domain.Task, error)
	DeleteTask(ctx context.Context, id string) (domain.Task, error)
	Summarize(ctx context.Context, text string) (string, error)
}

type inputMode int

const (
	inputNone inputMode = iota
	inputSearch
	inputQuickTask
	inputTaskForm
)

// pageLoadedMsg carries the sequence number of the request that produced it.
// Responses from superseded requests are dropped in Update, so a slow page 2
// can never overwrite a fresher page 3.
type pageLoadedMsg struct {
	seq        int
	tasks      []domain.Task
	pagination domain.PaginationInfo
	err        error
}

type opResultMsg struct {
	status string
	err    error
}

type summaryMsg struct {
	summary string
	err     error
}

const rowHeight = 1.0

type Model struct {
	client   TaskClient
	labels   grid.LabelSet
	pageSize int
	overscan int

	tasks      []domain.Task
	pagination domain.PaginationInfo
	loadSeq    int
	loading    bool

	view     grid.ViewState
	visible  []domain.Task
	window   grid.Window
	selected int

	inputMode inputMode
	form      *taskForm
	textInput textinput.Model

	statusLine string
	err        error

	width  int
	height int

	keys keyMap
}

func NewModel(client TaskClient, labels grid.LabelSet, pageSize, overscan int) Model {
	ti := textinput.New()
	ti.Placeholder = "Type..."
	ti.CharLimit = 512
	ti.Prompt = "> "

	return Model{
		client:    client,
		labels:    labels,
		pageSize:  pageSize,
		overscan:  overscan,
		keys:      newKeyMap(),
		textInput: ti,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadPageCmd(1)
}

// loadPageCmd bumps the sequence counter; the closure captures the value so
// the response can be matched against the latest request.
func (m *Model) nextSeq() int {
	m.loadSeq++
	return m.loadSeq
}

func (m Model) loadPageCmd(page int) tea.Cmd {
	client := m.client
	limit := m.pageSize
	seq := m.loadSeq

	return func() tea.Msg {
		tasks, pagination, err := client.ListTasks(context.Background(), page, limit)
		return pageLoadedMsg{seq: seq, tasks: tasks, pagination: pagination, err: err}
	}
}

func (m *Model) requestPage(page int) tea.Cmd {
	m.nextSeq()
	m.loading = true
	return m.loadPageCmd(page)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Fetch and mutation results are handled regardless of input mode; a page
	// response or a post-mutation refresh must never be lost to an open
	// filter prompt or form.
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recompute()
		return m, nil

	case pageLoadedMsg:
		if msg.seq != m.loadSeq {
			// A newer request is in flight or already landed.
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.statusLine = msg.err.Error()
			return m, nil
		}
		m.err = nil
		m.tasks = msg.tasks
		m.pagination = msg.pagination
		m.selected = 0
		m.view.ScrollOffset = 0
		m.recompute()
		return m, nil

	case opResultMsg:
		if msg.err != nil {
			m.err = msg.err
			m.statusLine = msg.err.Error()
			return m, nil
		}
		m.statusLine = msg.status
		return m, m.requestPage(m.currentPage())

	case summaryMsg:
		if msg.err != nil {
			m.statusLine = msg.err.Error()
			return m, nil
		}
		m.statusLine = "Résumé : " + msg.summary
		return m, nil

	case tea.KeyMsg:
		if m.inputMode != inputNone {
			return m.updateInputMode(msg)
		}
		return m.updateKeys(msg)
	}

	if m.inputMode != inputNone {
		// Component messages such as the cursor blink tick.
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		if m.pagination.HasPreviousPage {
			return m, m.requestPage(m.currentPage() - 1)
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		if m.pagination.HasNextPage {
			return m, m.requestPage(m.currentPage() + 1)
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.inputMode = inputSearch
		m.textInput.SetValue(m.view.Query)
		m.textInput.Placeholder = "Filtrer..."
		m.textInput.Focus()
		m.statusLine = "Filtre plein texte"
		return m, textinput.Blink

	case key.Matches(msg, m.keys.ClearSearch):
		if m.view.Query == "" {
			return m, nil
		}
		m.view.Query = ""
		m.statusLine = ""
		m.recompute()
		return m, nil

	case key.Matches(msg, m.keys.CycleSort):
		m.view = m.view.CycleColumn()
		m.recompute()
		return m, nil

	case key.Matches(msg, m.keys.ToggleDirection):
		m.view = m.view.ToggleDirection()
		m.recompute()
		return m, nil

	case key.Matches(msg, m.keys.NewTask):
		m.startCreateForm()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.QuickTask):
		m.inputMode = inputQuickTask
		m.textInput.SetValue("")
		m.textInput.Placeholder = "ECG pour M. Dupont demain matin, urgent"
		m.textInput.Focus()
		m.statusLine = "Tâche rapide depuis texte libre"
		return m, textinput.Blink

	case key.Matches(msg, m.keys.EditTask):
		task, ok := m.currentTask()
		if !ok {
			return m, nil
		}
		m.startEditForm(task)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.DeleteTask):
		task, ok := m.currentTask()
		if !ok {
			return m, nil
		}
		return m, m.deleteTaskCmd(task.ID)

	case key.Matches(msg, m.keys.Summarize):
		task, ok := m.currentTask()
		if !ok {
			return m, nil
		}
		text := task.Notes
		if text == "" {
			text = task.Description
		}
		if text == "" {
			m.statusLine = "rien à résumer"
			return m, nil
		}
		return m, m.summarizeCmd(text)

	case key.Matches(msg, m.keys.Reload):
		return m, m.requestPage(m.currentPage())
	}

	return m, nil
}

func (m Model) updateInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	mode := m.inputMode
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.inputMode = inputNone
		m.form = nil
		m.textInput.Blur()
		m.statusLine = ""
		return m, nil

	case key.Matches(msg, m.keys.Confirm) && mode == inputTaskForm:
		return m.submitOrAdvanceForm()

	case key.Matches(msg, m.keys.Confirm):
		value := m.textInput.Value()
		m.inputMode = inputNone
		m.textInput.Blur()
		switch mode {
		case inputSearch:
			m.view.Query = value
			m.statusLine = ""
			m.selected = 0
			m.recompute()
			return m, nil
		case inputQuickTask:
			return m.submitQuickTask(value)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.inputMode = mode
	return m, cmd
}

func (m *Model) moveSelection(delta int) {
	m.selected += delta
	m.recompute()
}

// recompute re-derives everything downstream of the base page: the filtered
// and sorted row list, the clamped selection, the scroll offset that keeps
// the selection in view, and the virtualization window.
func (m *Model) recompute() {
	m.visible = m.view.Apply(m.tasks, m.labels)

	if m.selected >= len(m.visible) {
		m.selected = len(m.visible) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}

	viewport := m.viewportHeight()

	// Follow the selection with the scroll offset.
	selTop := float64(m.selected) * rowHeight
	if selTop < m.view.ScrollOffset {
		m.view.ScrollOffset = selTop
	}
	if selTop+rowHeight > m.view.ScrollOffset+viewport {
		m.view.ScrollOffset = selTop + rowHeight - viewport
	}
	m.view.ScrollOffset = grid.ClampOffset(len(m.visible), viewport, rowHeight, m.view.ScrollOffset)

	m.window = grid.ComputeWindow(len(m.visible), viewport, rowHeight, m.view.ScrollOffset, m.overscan)
}

// viewportHeight is the row budget left after the surrounding chrome.
func (m Model) viewportHeight() float64 {
	h := m.height - 8
	if h < 4 {
		h = 4
	}
	return float64(h)
}

func (m Model) currentPage() int {
	if m.pagination.CurrentPage < 1 {
		return 1
	}
	return m.pagination.CurrentPage
}

func (m Model) currentTask() (domain.Task, bool) {
	if m.selected < 0 || m.selected >= len(m.visible) {
		return domain.Task{}, false
	}
	return m.visible[m.selected], true
}

func (m Model) deleteTaskCmd(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if _, err := client.DeleteTask(context.Background(), id); err != nil {
			return opResultMsg{err: err}
		}
		return opResultMsg{status: "tâche supprimée"}
	}
}

func (m Model) summarizeCmd(text string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		summary, err := client.Summarize(context.Background(), text)
		return summaryMsg{summary: summary, err: err}
	}
}
