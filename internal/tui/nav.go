package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrocfella/todolist/internal/model"
)

// Mode selects how the edit screen opens. It is resolved once, when the
// screen is entered.
type Mode interface {
	Title() string
	isMode()
}

// CreateMode opens a blank draft that is added on save.
type CreateMode struct{}

// EditMode opens the draft of an existing todo that is updated on save.
type EditMode struct {
	ID string
}

func (CreateMode) Title() string { return "Add Todo" }
func (EditMode) Title() string   { return "Update Todo" }

func (CreateMode) isMode() {}
func (EditMode) isMode()   {}

// ModeFor resolves navigation params: no params, or a record without an ID,
// means create.
func ModeFor(params *model.Todo) Mode {
	if params == nil || params.ID == "" {
		return CreateMode{}
	}
	return EditMode{ID: params.ID}
}

type navigateMsg struct{ mode Mode }

type backMsg struct{}

// storeChangedMsg is delivered after the store publishes one or more changes.
type storeChangedMsg struct{}

func navigate(params *model.Todo) tea.Cmd {
	mode := ModeFor(params)
	return func() tea.Msg { return navigateMsg{mode: mode} }
}

func back() tea.Msg { return backMsg{} }
