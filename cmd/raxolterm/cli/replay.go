package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raxolterm/vtcore"
	"github.com/raxolterm/vtcore/cmd/raxolterm/internal/hconfig"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Feed a previously recorded byte stream through a fresh emulator",
	Long: `replay reads the raw bytes written by "run --record" and feeds them
through a new Emulator with no attached PTY, printing the resulting screen
once the whole stream has been consumed. Useful for regression-checking a
captured session against the current parser and executor.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := hconfig.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading recording: %w", err)
	}

	emu, err := vtcore.New(
		vtcore.WithSize(cfg.Rows, cfg.Cols),
		vtcore.WithScrollback(cfg.ScrollbackCapacity),
		vtcore.WithOSCLimit(cfg.OSCPayloadLimit),
		vtcore.WithDCSLimit(cfg.DCSPayloadLimit),
		vtcore.WithDiagnostics(log),
	)
	if err != nil {
		return fmt.Errorf("constructing emulator: %w", err)
	}

	emu.Feed(data)

	snap := emu.Snapshot(vtcore.SnapshotDetailText)
	for _, line := range snap.Lines {
		fmt.Println(line.Text)
	}
	return nil
}
