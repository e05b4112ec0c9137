package cli

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raxolterm/vtcore"
	"github.com/raxolterm/vtcore/cmd/raxolterm/internal/hconfig"
	"github.com/raxolterm/vtcore/cmd/raxolterm/internal/ptyshell"
	"github.com/raxolterm/vtcore/cmd/raxolterm/internal/statusline"
	"github.com/raxolterm/vtcore/cmd/raxolterm/internal/termraw"
)

var recordPath string

var runCmd = &cobra.Command{
	Use:   "run [-- command [args...]]",
	Short: "Run a program in a PTY and feed its output through the emulator",
	Long: `run spawns a program (default: $SHELL) attached to a pseudo-terminal,
feeds everything it writes through the vtcore emulator, forwards the
operator's own keystrokes back to it through the Input Encoder, and shows a
one-line status bar describing the emulator's state.`,
	Args: cobra.ArbitraryArgs,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&recordPath, "record", "", "record the raw byte stream to this file for later replay")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := hconfig.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	interactive := isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())

	cols, rows := cfg.Cols, cfg.Rows
	if interactive {
		if w, h := termraw.Size(os.Stdout); w > 0 && h > 0 {
			cols, rows = w, h
		}
	}

	var progName string
	var progArgs []string
	if len(args) > 0 {
		progName, progArgs = args[0], args[1:]
	}

	sess, err := ptyshell.Start(progName, progArgs, cols, rows)
	if err != nil {
		return fmt.Errorf("starting pty: %w", err)
	}
	defer sess.Close()

	opts := []vtcore.Option{
		vtcore.WithSize(rows, cols),
		vtcore.WithScrollback(cfg.ScrollbackCapacity),
		vtcore.WithOSCLimit(cfg.OSCPayloadLimit),
		vtcore.WithDCSLimit(cfg.DCSPayloadLimit),
		vtcore.WithDiagnostics(log),
		vtcore.WithResponseWriter(sess),
	}

	var recorder *ptyshell.FileRecorder
	if recordPath != "" {
		recorder, err = ptyshell.NewFileRecorder(recordPath)
		if err != nil {
			return fmt.Errorf("opening record file: %w", err)
		}
		defer recorder.Close()
		opts = append(opts, vtcore.WithRecordingProvider(recorder))
	}

	emu, err := vtcore.New(opts...)
	if err != nil {
		return fmt.Errorf("constructing emulator: %w", err)
	}

	if interactive {
		rawState, rawErr := termraw.Enable(os.Stdin)
		if rawErr != nil {
			log.Warn().Err(rawErr).Msg("failed to enable raw mode, continuing without it")
		} else {
			defer termraw.Restore(rawState)
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)

	done := make(chan struct{})
	go pumpPtyOutput(sess, emu, done)
	go pumpKeystrokes(sess, emu, interactive)

	select {
	case <-done:
	case <-sigCh:
	}
	renderStatus(emu, os.Stdout)
	return nil
}

func pumpPtyOutput(sess *ptyshell.Session, emu *vtcore.Emulator, done chan<- struct{}) {
	buf := make([]byte, 4096)
	for {
		n, err := sess.Read(buf)
		if n > 0 {
			emu.Feed(buf[:n])
		}
		if err != nil || sess.HasExited() {
			close(done)
			return
		}
	}
}

func pumpKeystrokes(sess *ptyshell.Session, emu *vtcore.Emulator, interactive bool) {
	if !interactive {
		return
	}
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return
		}
		if n > 0 {
			sess.Write(emu.EncodeKey(vtcore.KeyEvent{Char: rune(buf[0])}))
		}
		if sess.HasExited() {
			return
		}
	}
}

func renderStatus(emu *vtcore.Emulator, w *os.File) {
	snap := emu.Snapshot(vtcore.SnapshotDetailText)
	cols, _ := termraw.Size(w)

	var modes []string
	if emu.ModeEnabled(vtcore.ModeBracketPaste) {
		modes = append(modes, "paste")
	}
	if emu.ModeEnabled(vtcore.ModeAltScreen) {
		modes = append(modes, "altscreen")
	}
	if emu.ModeEnabled(vtcore.ModeSGRMouse) {
		modes = append(modes, "mouse")
	}

	fmt.Fprintln(w, statusline.Render(snap, emu.ScrollbackLen(), cols, modes))
}

