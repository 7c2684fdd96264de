package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

// configPath is the --config persistent flag.
var configPath string

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bidlens",
		Short: "bidlens - bid accuracy analysis for simulated card games",
		Long: `bidlens reads the JSONL logs written by the game simulator and reports how
accurately each AI type predicts the tricks it will take.

Each line of a log is one complete game. Unparseable lines and records missing
required fields are skipped with a warning on stderr; the report goes to stdout.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (default: search for .bidlens.yaml)")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newReportCommand())
	cmd.AddCommand(newTotalsCommand())
	cmd.AddCommand(newValidateCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
