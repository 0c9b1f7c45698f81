package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit            key.Binding
	Up              key.Binding
	Down            key.Binding
	PrevPage        key.Binding
	NextPage        key.Binding
	Search          key.Binding
	ClearSearch     key.Binding
	CycleSort       key.Binding
	ToggleDirection key.Binding
	NewTask         key.Binding
	QuickTask       key.Binding
	EditTask        key.Binding
	DeleteTask      key.Binding
	Summarize       key.Binding
	Reload          key.Binding
	Confirm         key.Binding
	Cancel          key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:            key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Up:              key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:            key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PrevPage:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev page")),
		NextPage:        key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
		Search:          key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		ClearSearch:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filter")),
		CycleSort:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "cycle sort column")),
		ToggleDirection: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "asc/desc")),
		NewTask:         key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new task")),
		QuickTask:       key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "quick task from text")),
		EditTask:        key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit task")),
		DeleteTask:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete task")),
		Summarize:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "summarize notes")),
		Reload:          key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Confirm:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:          key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}
