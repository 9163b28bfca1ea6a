package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrocfella/todolist/internal/model"
	"github.com/kingrocfella/todolist/internal/store"
	"github.com/kingrocfella/todolist/internal/ui"
)

// todoItem adapts model.Todo to list.Item.
type todoItem struct {
	todo model.Todo
}

func (i todoItem) Title() string       { return i.todo.Name }
func (i todoItem) Description() string { return i.todo.Description }
func (i todoItem) FilterValue() string { return i.todo.Name + " " + i.todo.Description }

// todoDelegate renders a todo on two lines: the name with its actions, then
// the description.
type todoDelegate struct{}

func (d todoDelegate) Height() int                               { return 2 }
func (d todoDelegate) Spacing() int                              { return 1 }
func (d todoDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d todoDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(todoItem)
	if !ok {
		return
	}
	t := ui.Current()

	box := t.Muted.Render(t.BoxUnchecked)
	name, desc := it.todo.Name, t.Muted.Render(it.todo.Description)
	actions := t.Accent.Render("✎") + " " + t.Error.UnsetBold().Render("✗")
	if it.todo.Completed {
		box = t.Success.Render(t.BoxChecked)
		name = t.Done.Render(it.todo.Name)
		desc = t.Done.Render(it.todo.Description)
		actions = t.Muted.Render("✎ ✗")
	}

	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render(">") + " "
	}
	fmt.Fprintf(w, "%s%s %s  %s\n", prefix, box, name, actions)
	fmt.Fprintf(w, "    %s", desc)
}

// listModel is the list screen.
type listModel struct {
	store   *store.Store
	list    list.Model
	keys    *listKeyMap
	confirm ConfirmProps
	width   int
	height  int
}

type confirmDeleteMsg struct{ id string }

type cancelDeleteMsg struct{}

func newListModel(s *store.Store) listModel {
	keys := defaultListKeyMap()

	l := list.New(nil, todoDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")
	l.Styles.HelpStyle = ui.Current().Help.Padding(1, 0, 0, 2)
	l.Styles.PaginationStyle = ui.Current().Help.PaddingLeft(2)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	// d/u page by default; d deletes here.
	l.KeyMap.NextPage = key.NewBinding(key.WithKeys("right", "l", "pgdown", "f"), key.WithHelp("→/l/pgdn", "next page"))
	l.KeyMap.PrevPage = key.NewBinding(key.WithKeys("left", "h", "pgup", "b"), key.WithHelp("←/h/pgup", "prev page"))
	l.AdditionalShortHelpKeys = keys.short
	l.AdditionalFullHelpKeys = keys.short

	m := listModel{
		store: store.MustFrom(s),
		list:  l,
		keys:  keys,
	}
	m.refresh()
	return m
}

// refresh reloads the rows from the store.
func (m *listModel) refresh() tea.Cmd {
	todos := m.store.Todos()
	items := make([]list.Item, 0, len(todos))
	for _, t := range todos {
		items = append(items, todoItem{todo: t})
	}
	cmd := m.list.SetItems(items)
	if n := len(m.list.VisibleItems()); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
	m.syncKeys()
	return cmd
}

func (m listModel) selected() (model.Todo, bool) {
	it, ok := m.list.SelectedItem().(todoItem)
	if !ok {
		return model.Todo{}, false
	}
	return it.todo, true
}

// syncKeys disables edit and delete while a completed todo is selected.
func (m *listModel) syncKeys() {
	sel, ok := m.selected()
	m.keys.Toggle.SetEnabled(ok)
	m.keys.Edit.SetEnabled(ok && !sel.Completed)
	m.keys.Delete.SetEnabled(ok && !sel.Completed)
}

func (m listModel) filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m *listModel) setSize(w, h int) {
	m.width, m.height = w, h
	m.list.SetSize(w-4, max(h-6, 1))
}

func (m listModel) Update(msg tea.Msg) (listModel, tea.Cmd) {
	switch msg := msg.(type) {
	case storeChangedMsg:
		cmd := m.refresh()
		return m, cmd

	case confirmDeleteMsg:
		m.confirm = ConfirmProps{}
		m.store.Delete(msg.id)
		cmd := m.refresh()
		return m, cmd

	case cancelDeleteMsg:
		m.confirm = ConfirmProps{}
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := HandleConfirmKey(m.confirm, msg); handled {
			return m, cmd
		}
		if m.filtering() {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Add):
			return m, navigate(nil)
		case key.Matches(msg, m.keys.Toggle):
			if sel, ok := m.selected(); ok {
				m.store.Toggle(sel.ID)
			}
			cmd := m.refresh()
			return m, cmd
		case key.Matches(msg, m.keys.Edit):
			if sel, ok := m.selected(); ok && !sel.Completed {
				return m, navigate(&sel)
			}
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			if sel, ok := m.selected(); ok && !sel.Completed {
				m.confirm = deleteConfirm(sel)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.syncKeys()
	return m, cmd
}

func deleteConfirm(t model.Todo) ConfirmProps {
	id := t.ID
	return ConfirmProps{
		Visible:     true,
		Title:       "Delete Todo",
		Message:     fmt.Sprintf("Are you sure you want to delete %q?", t.Name),
		ConfirmText: "Delete",
		CancelText:  "Cancel",
		OnConfirm:   func() tea.Cmd { return func() tea.Msg { return confirmDeleteMsg{id: id} } },
		OnCancel:    func() tea.Cmd { return func() tea.Msg { return cancelDeleteMsg{} } },
	}
}

func (m listModel) header() string {
	t := ui.Current()
	todos := m.store.Todos()
	done, pending := model.Stats(todos)
	title := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Todo List"),
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), len(todos),
	)
	add := t.Success.Render("[+]") + t.Muted.Render(" a add")
	gap := max(m.width-6-lipgloss.Width(title)-lipgloss.Width(add), 2)
	return title + strings.Repeat(" ", gap) + add + "\n" +
		t.Muted.Render(ui.ProgressBar(done, done+pending, 28))
}

func (m listModel) View() string {
	var body string
	switch {
	case m.confirm.Visible:
		body = lipgloss.Place(max(m.width-4, 0), max(m.height-6, 0), lipgloss.Center, lipgloss.Center,
			RenderConfirm(m.confirm, m.width))
	case m.store.Len() == 0:
		body = ""
	default:
		body = m.list.View()
	}
	return m.header() + "\n\n" + body
}
