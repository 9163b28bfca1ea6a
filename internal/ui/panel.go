package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders done/total as a bar of width cells followed by the
// percentage, using the current theme's glyphs.
func ProgressBar(done, total, width int) string {
	t := Current()
	width = max(width, 5)
	ratio := 0.0
	if total > 0 {
		ratio = min(float64(done)/float64(total), 1)
	}
	filled := int(ratio * float64(width))
	return t.Success.Render(strings.Repeat(t.BarFilled, filled)) +
		t.Muted.Render(strings.Repeat(t.BarEmpty, width-filled)) +
		fmt.Sprintf(" %3d%%", int(ratio*100))
}

// Frame wraps inner in the current theme's border.
func Frame(inner string) string {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(inner)
}

// Panel prints lines inside a frame.
func Panel(w io.Writer, lines []string) {
	fmt.Fprintln(w, Frame(strings.Join(lines, "\n")))
}

// Fail reports msg on w, normally stderr.
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, Current().Error.Render("✖ "+msg)) }
