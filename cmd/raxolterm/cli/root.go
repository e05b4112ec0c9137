// Package cli implements the raxolterm command-line interface using Cobra.
// It hosts a PTY-backed demo harness that exercises the vtcore emulator
// against a real program: run, replay, and inspect subcommands.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string

	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "raxolterm",
	Short: "Demo harness for the vtcore terminal emulator core",
	Long: `raxolterm drives the vtcore emulator against a real PTY-backed
program, or replays a previously recorded byte stream, so the core's
parsing and screen-model behavior can be exercised and inspected without
a full terminal UI.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostic logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a harness YAML config file")
}
