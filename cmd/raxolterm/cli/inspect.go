package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raxolterm/vtcore"
	"github.com/raxolterm/vtcore/cmd/raxolterm/internal/hconfig"
)

var inspectDetail string

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Replay a recording and dump the resulting Snapshot as JSON",
	Long: `inspect is like replay, but emits the full structured Snapshot (size,
cursor, per-cell styling and hyperlinks) as JSON instead of plain text, for
feeding into external tooling or diffing against a golden file.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&inspectDetail, "detail", "full", "snapshot detail: text, styled, or full")
}

func runInspect(cmd *cobra.Command, args []string) error {
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
	)
	if err != nil {
		return fmt.Errorf("constructing emulator: %w", err)
	}

	emu.Feed(data)

	detail := vtcore.SnapshotDetail(inspectDetail)
	snap := emu.Snapshot(detail)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}
