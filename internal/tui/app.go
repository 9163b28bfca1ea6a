// Package tui hosts the interactive todo list: a list screen, an edit screen
// and a confirmation dialog, all reading from one store.
package tui

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/kingrocfella/todolist/internal/store"
	"github.com/kingrocfella/todolist/internal/ui"
)

// Options tune the program.
type Options struct {
	AltScreen bool
	Logger    *log.Logger
}

// Model is the root Bubble Tea model. It owns the navigation stack: the list
// screen is always present and the edit screen sits on top while open.
type Model struct {
	store   *store.Store
	log     *log.Logger
	list    listModel
	edit    *editModel
	changes chan struct{}
	done    chan struct{}
	dirty   atomic.Bool
	unsub   func()
	closing sync.Once
	width   int
	height  int
}

// New wires a root model to s and subscribes it to store changes.
func New(s *store.Store, logger *log.Logger) *Model {
	s = store.MustFrom(s)
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &Model{
		store:   s,
		log:     logger,
		list:    newListModel(s),
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
		width:   80,
		height:  24,
	}
	m.list.setSize(m.width, m.height)
	m.unsub = s.Subscribe(m.notify)
	return m
}

// notify marks the list stale. Changes made inside Update are picked up
// before Update returns; the channel wakes the program for changes made
// anywhere else, coalescing bursts into one re-render.
func (m *Model) notify(c store.Change) {
	m.log.Debug("store changed", "op", c.Op, "id", c.Todo.ID)
	m.dirty.Store(true)
	select {
	case m.changes <- struct{}{}:
	default:
	}
}

func (m *Model) waitForChange() tea.Msg {
	select {
	case <-m.changes:
		return storeChangedMsg{}
	case <-m.done:
		return nil
	}
}

// Close stops listening to the store and releases a pending waitForChange.
func (m *Model) Close() {
	m.closing.Do(func() {
		if m.unsub != nil {
			m.unsub()
		}
		close(m.done)
	})
}

func (m *Model) Init() tea.Cmd {
	return m.waitForChange
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	if m.dirty.Swap(false) {
		cmd = tea.Batch(cmd, m.list.refresh())
	}
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.setSize(msg.Width, msg.Height)
		if m.edit != nil {
			m.edit.setSize(msg.Width, msg.Height)
		}
		return nil

	case storeChangedMsg:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return tea.Batch(cmd, m.waitForChange)

	case navigateMsg:
		m.log.Debug("navigate", "to", msg.mode.Title())
		e := newEditModel(m.store, msg.mode, m.log)
		e.setSize(m.width, m.height)
		m.edit = &e
		return e.Init()

	case backMsg:
		m.edit = nil
		return nil

	case tea.KeyMsg:
		if key.Matches(msg, forceQuit) {
			return tea.Quit
		}
	}

	var cmd tea.Cmd
	if m.edit != nil {
		e, c := m.edit.Update(msg)
		m.edit, cmd = &e, c
		return cmd
	}
	m.list, cmd = m.list.Update(msg)
	return cmd
}

func (m *Model) View() string {
	if m.edit != nil {
		return ui.Frame(m.edit.View())
	}
	return ui.Frame(m.list.View())
}

// Run starts the program and blocks until the user quits or ctx ends.
func Run(ctx context.Context, s *store.Store, opts Options) error {
	m := New(s, opts.Logger)
	defer m.Close()

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(m, progOpts...).Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
