package tui

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/kingrocfella/todolist/internal/model"
	"github.com/kingrocfella/todolist/internal/store"
	"github.com/kingrocfella/todolist/internal/ui"
)

type editField int

const (
	fieldName editField = iota
	fieldDescription
	fieldButton
	fieldCount
)

// editModel is the edit screen. The inputs hold the draft; nothing reaches
// the store until save.
type editModel struct {
	store *store.Store
	mode  Mode
	name  textinput.Model
	desc  textarea.Model
	focus editField
	keys  editKeyMap
	help  help.Model
	width int
}

func newEditModel(s *store.Store, mode Mode, logger *log.Logger) editModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	name := textinput.New()
	name.Placeholder = "Todo Name"
	name.Prompt = "> "
	name.CharLimit = 200

	desc := textarea.New()
	desc.Placeholder = "Todo Description"
	desc.ShowLineNumbers = false
	desc.CharLimit = model.DescriptionLimit
	desc.SetHeight(3)

	m := editModel{
		store: store.MustFrom(s),
		mode:  mode,
		name:  name,
		desc:  desc,
		keys:  defaultEditKeyMap(),
		help:  help.New(),
	}

	if em, ok := mode.(EditMode); ok {
		if t, found := m.store.Get(em.ID); found {
			m.name.SetValue(t.Name)
			m.desc.SetValue(t.Description)
		} else {
			logger.Warn("edit target not found; starting from a blank draft", "id", em.ID)
		}
	}
	m.name.CursorEnd()
	m.name.Focus()
	return m
}

func (m editModel) Init() tea.Cmd { return textinput.Blink }

// Draft returns the unsaved name and description.
func (m editModel) Draft() (name, description string) {
	return m.name.Value(), m.desc.Value()
}

func (m *editModel) setSize(w, _ int) {
	m.width = w
	inner := max(w-8, 20)
	m.name.Width = inner - 2
	m.desc.SetWidth(inner)
	m.help.Width = inner
}

func (m *editModel) setFocus(f editField) tea.Cmd {
	m.focus = (f + fieldCount) % fieldCount
	m.name.Blur()
	m.desc.Blur()
	switch m.focus {
	case fieldName:
		return m.name.Focus()
	case fieldDescription:
		return m.desc.Focus()
	}
	return nil
}

func (m editModel) save() tea.Cmd {
	name, desc := m.Draft()
	switch mode := m.mode.(type) {
	case EditMode:
		m.store.Update(mode.ID, name, desc)
	default:
		m.store.Add(name, desc)
	}
	return back
}

func (m editModel) Update(msg tea.Msg) (editModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, back
		case key.Matches(msg, m.keys.Save):
			return m, m.save()
		case key.Matches(msg, m.keys.Next):
			cmd := m.setFocus(m.focus + 1)
			return m, cmd
		case key.Matches(msg, m.keys.Prev):
			cmd := m.setFocus(m.focus - 1)
			return m, cmd
		case key.Matches(msg, m.keys.Submit) && m.focus == fieldButton:
			return m, m.save()
		case key.Matches(msg, m.keys.Submit) && m.focus == fieldName:
			cmd := m.setFocus(fieldDescription)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldName:
		m.name, cmd = m.name.Update(msg)
	case fieldDescription:
		m.desc, cmd = m.desc.Update(msg)
	}
	return m, cmd
}

func (m editModel) View() string {
	t := ui.Current()
	label := t.Title
	inputBox := lipgloss.NewStyle().Border(t.Border).BorderForeground(t.BorderColor).Padding(0, 1)
	focused := inputBox.BorderForeground(t.Accent.GetForeground())

	nameBox, descBox := inputBox, inputBox
	switch m.focus {
	case fieldName:
		nameBox = focused
	case fieldDescription:
		descBox = focused
	}

	count := fmt.Sprintf("%d/%d", utf8.RuneCountInString(m.desc.Value()), model.DescriptionLimit)
	counterWidth := lipgloss.Width(descBox.Render(m.desc.View()))

	button := lipgloss.NewStyle().Padding(0, 3).Bold(true).
		Foreground(lipgloss.Color("15")).Background(lipgloss.Color("28"))
	if m.focus == fieldButton {
		button = button.Reverse(true)
	}

	var b strings.Builder
	b.WriteString(t.Muted.Render("← esc") + "   " + t.Title.Render(m.mode.Title()) + "\n\n")
	b.WriteString(label.Render("Todo Name") + "\n")
	b.WriteString(nameBox.Render(m.name.View()) + "\n\n")
	b.WriteString(label.Render("Todo Description") + "\n")
	b.WriteString(descBox.Render(m.desc.View()) + "\n")
	b.WriteString(t.Muted.Width(counterWidth).Align(lipgloss.Right).Render(count) + "\n\n")
	b.WriteString(button.Render(m.mode.Title()) + "\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
