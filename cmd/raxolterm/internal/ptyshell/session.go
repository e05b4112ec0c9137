// Package ptyshell spawns a host program in a pseudo-terminal and streams
// its output into the emulator core.
package ptyshell

import (
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/creack/pty"
)

// Session manages a pseudo-terminal connection to a spawned program.
type Session struct {
	cmd *exec.Cmd
	pty *os.File
	mu  sync.Mutex

	exitedMu sync.Mutex
	exited   bool
}

// Start launches name (with args) attached to a new pseudo-terminal sized
// cols x rows. If name is empty, the user's $SHELL is used.
func Start(name string, args []string, cols, rows int) (*Session, error) {
	if name == "" {
		name = os.Getenv("SHELL")
		if name == "" {
			name = "/bin/sh"
		}
	}

	cmd := exec.Command(name, args...)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color", "COLORTERM=truecolor")

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Cols: uint16(cols),
		Rows: uint16(rows),
	})
	if err != nil {
		return nil, err
	}

	s := &Session{cmd: cmd, pty: ptmx}
	go func() {
		cmd.Wait()
		s.exitedMu.Lock()
		s.exited = true
		s.exitedMu.Unlock()
	}()
	return s, nil
}

// Read reads raw output from the pseudo-terminal.
func (s *Session) Read(buf []byte) (int, error) {
	return s.pty.Read(buf)
}

// Write sends raw input (keystrokes, pastes) to the pseudo-terminal.
func (s *Session) Write(data []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pty.Write(data)
}

// Resize informs the pseudo-terminal of a new grid size.
func (s *Session) Resize(cols, rows int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pty.Setsize(s.pty, &pty.Winsize{Cols: uint16(cols), Rows: uint16(rows)})
}

// HasExited reports whether the spawned program has exited.
func (s *Session) HasExited() bool {
	s.exitedMu.Lock()
	defer s.exitedMu.Unlock()
	return s.exited
}

// Close terminates the spawned program and releases the pseudo-terminal.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cmd.Process != nil {
		s.cmd.Process.Kill()
	}
	return s.pty.Close()
}

// Reader exposes the pseudo-terminal's read end.
func (s *Session) Reader() io.Reader { return s.pty }

// Writer exposes the pseudo-terminal's write end.
func (s *Session) Writer() io.Writer { return s.pty }
