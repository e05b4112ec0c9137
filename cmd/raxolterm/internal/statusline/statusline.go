// Package statusline renders the harness's own operator status bar. It
// never touches the emulated grid — only the harness's chrome.
package statusline

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/raxolterm/vtcore"
)

var (
	barStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	modeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Render builds a one-line status bar describing the emulator's current
// size, cursor position, scrollback depth, and any active modes a host
// program would want surfaced (bracketed paste, alt screen, mouse
// reporting).
func Render(snap *vtcore.Snapshot, scrollbackLines int, width int, activeModes []string) string {
	left := fmt.Sprintf(" raxolterm %dx%d ", snap.Size.Cols, snap.Size.Rows)
	cursor := fmt.Sprintf("cursor %d,%d", snap.Cursor.Row, snap.Cursor.Col)
	scrollback := fmt.Sprintf("scrollback %d", scrollbackLines)

	plain := left + "  " + cursor + "  " + scrollback
	if len(activeModes) > 0 {
		plain += "  " + joinModes(activeModes)
	}

	if width > 0 && len([]rune(plain)) > width {
		return truncate(plain, width)
	}

	line := barStyle.Render(left) + "  " + dimStyle.Render(cursor) + "  " + dimStyle.Render(scrollback)
	if len(activeModes) > 0 {
		line += "  " + modeStyle.Render(joinModes(activeModes))
	}
	return line
}

func joinModes(modes []string) string {
	out := ""
	for i, m := range modes {
		if i > 0 {
			out += " "
		}
		out += "[" + m + "]"
	}
	return out
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width])
}
