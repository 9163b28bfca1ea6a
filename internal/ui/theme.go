// Package ui holds the shared look of the CLI and the TUI: palette, symbols
// and box drawing, selected by theme name.
package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrUnknownTheme is returned by SetTheme for names it does not know.
var ErrUnknownTheme = errors.New("unknown theme")

// Themes lists the accepted theme names.
var Themes = []string{"classic", "neon", "mono"}

// Theme bundles palette + symbols + box borders.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Done, Help                          lipgloss.Style

	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string
	BarFilled, BarEmpty      string
	Border                   lipgloss.Border
	BorderColor              lipgloss.TerminalColor
	Danger                   lipgloss.Color
}

var current = classic()

func classic() Theme {
	return Theme{
		Name:         "classic",
		Title:        lipgloss.NewStyle().Bold(true),
		Muted:        lipgloss.NewStyle().Faint(true),
		Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
		Done:         lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Help:         lipgloss.NewStyle().Faint(true),
		BoxUnchecked: "☐", BoxChecked: "☑",
		SymDone: "✔", SymPending: "•",
		BarFilled: "█", BarEmpty: "░",
		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),
		Danger:      lipgloss.Color("#dc3545"),
	}
}

func neon() Theme {
	t := classic()
	t.Name = "neon"
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	t.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	t.BoxUnchecked, t.BoxChecked = "◻", "◼"
	t.BorderColor = lipgloss.Color("13")
	return t
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:  "mono",
		Title: plain.Bold(true), Muted: plain, Accent: plain,
		Success: plain, Error: plain, Pending: plain,
		Selected:     plain.Reverse(true),
		Done:         plain.Strikethrough(true),
		Help:         plain,
		BoxUnchecked: "[ ]", BoxChecked: "[x]",
		SymDone: "x", SymPending: "-",
		BarFilled: "#", BarEmpty: ".",
		Border:      lipgloss.NormalBorder(),
		BorderColor: lipgloss.NoColor{},
		Danger:      lipgloss.Color(""),
	}
}

// Lookup returns the theme called name without making it current.
func Lookup(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "classic":
		return classic(), nil
	case "neon":
		return neon(), nil
	case "mono":
		return mono(), nil
	}
	return Theme{}, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownTheme, name, strings.Join(Themes, ", "))
}

// SetTheme makes the named theme current.
func SetTheme(name string) error {
	t, err := Lookup(name)
	if err != nil {
		return err
	}
	current = t
	return nil
}

// Current returns the active theme.
func Current() Theme { return current }
