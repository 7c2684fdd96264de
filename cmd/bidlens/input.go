package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/spboyer/bidlens/internal/discovery"
	"github.com/spboyer/bidlens/internal/loader"
	"github.com/spboyer/bidlens/internal/models"
	"github.com/spboyer/bidlens/internal/projectconfig"
	"github.com/spboyer/bidlens/internal/spinner"
	"github.com/spboyer/bidlens/internal/validation"
)

// loadProjectConfig honours --config, otherwise searches upward from the
// working directory.
func loadProjectConfig() (*projectconfig.ProjectConfig, error) {
	if configPath != "" {
		return projectconfig.LoadFile(configPath)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return projectconfig.Load(wd)
}

// resolveInput picks the log to analyze. With pick set and several logs in
// the target directory, the user chooses interactively.
func resolveInput(cmd *cobra.Command, args []string, defaultDir string, pick bool) (string, error) {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}

	if pick {
		dir := arg
		if dir == "" {
			dir = defaultDir
		}
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			files, err := discovery.Discover(dir)
			if err != nil {
				return "", err
			}
			if len(files) > 1 {
				return pickResultsFile(cmd.InOrStdin(), cmd.ErrOrStderr(), files)
			}
		}
	}

	path, err := discovery.Resolve(arg, defaultDir)
	if err != nil {
		return "", err
	}
	slog.Debug("resolved results log", "path", path)
	return path, nil
}

// loadGames reads and validates every game in path.
func loadGames(cmd *cobra.Command, path string, sink loader.WarningSink) ([]models.GameRecord, error) {
	stop := spinner.Start(cmd.ErrOrStderr(), "Loading "+path)
	records, err := loader.LoadFile(path, sink)
	stop()
	if err != nil {
		return nil, err
	}
	games, err := validation.Games(records, sink)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("loaded games", "path", path, "records", len(records), "valid", len(games))
	return games, nil
}
