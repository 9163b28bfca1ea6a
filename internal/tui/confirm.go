package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrocfella/todolist/internal/ui"
)

// ConfirmProps fully describe a confirmation dialog. The dialog keeps no
// state of its own; the owner decides visibility and reacts to the callbacks.
type ConfirmProps struct {
	Visible      bool
	Title        string
	Message      string
	ConfirmText  string
	CancelText   string
	ConfirmColor lipgloss.Color

	OnConfirm func() tea.Cmd
	OnCancel  func() tea.Cmd
}

func (p ConfirmProps) withDefaults() ConfirmProps {
	if p.ConfirmText == "" {
		p.ConfirmText = "Confirm"
	}
	if p.CancelText == "" {
		p.CancelText = "Cancel"
	}
	if p.ConfirmColor == "" {
		p.ConfirmColor = ui.Current().Danger
	}
	return p
}

// HandleConfirmKey raises at most one callback for msg. handled is false when
// the dialog is hidden or the key means nothing to it.
func HandleConfirmKey(p ConfirmProps, msg tea.KeyMsg) (cmd tea.Cmd, handled bool) {
	if !p.Visible {
		return nil, false
	}
	switch {
	case key.Matches(msg, confirmKeys.Confirm):
		if p.OnConfirm != nil {
			cmd = p.OnConfirm()
		}
		return cmd, true
	case key.Matches(msg, confirmKeys.Cancel):
		if p.OnCancel != nil {
			cmd = p.OnCancel()
		}
		return cmd, true
	}
	// swallow everything else while open
	return nil, true
}

// RenderConfirm draws the dialog box, or "" when hidden.
func RenderConfirm(p ConfirmProps, width int) string {
	if !p.Visible {
		return ""
	}
	p = p.withDefaults()
	t := ui.Current()

	boxWidth := 44
	if width > 0 && width-4 < boxWidth {
		boxWidth = max(width-4, 20)
	}
	inner := boxWidth - 4

	title := t.Title.Width(inner).Align(lipgloss.Center).Render(p.Title)
	message := t.Muted.Width(inner).Align(lipgloss.Center).Render(p.Message)

	button := lipgloss.NewStyle().Padding(0, 2)
	cancel := button.Reverse(true).Render(p.CancelText + " (n)")
	confirm := button.Bold(true).Foreground(lipgloss.Color("15")).Background(p.ConfirmColor).Render(p.ConfirmText + " (y)")
	buttons := lipgloss.PlaceHorizontal(inner, lipgloss.Center,
		lipgloss.JoinHorizontal(lipgloss.Top, cancel, "  ", confirm))

	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(1, 1).
		Width(boxWidth).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, "", message, "", buttons))
}
