//go:build !windows

// Package termraw puts the harness's own stdin into raw mode so keystrokes
// reach the Input Encoder one byte at a time instead of being line-buffered
// by the tty driver.
package termraw

import (
	"os"

	"golang.org/x/term"
)

// State holds the previous terminal state for restoration.
type State struct {
	fd    int
	saved *term.State
}

// Enable puts f into raw mode. Callers must pass the returned State to
// Restore when done, even on error paths.
func Enable(f *os.File) (*State, error) {
	fd := int(f.Fd())
	saved, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &State{fd: fd, saved: saved}, nil
}

// Restore puts the terminal back into the state captured by Enable.
func Restore(s *State) error {
	if s == nil || s.saved == nil {
		return nil
	}
	return term.Restore(s.fd, s.saved)
}

// IsTerminal reports whether f is attached to a real terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Size returns f's terminal dimensions in (cols, rows), or (0, 0) if f is
// not a terminal or the size cannot be determined.
func Size(f *os.File) (cols, rows int) {
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}
	return w, h
}
