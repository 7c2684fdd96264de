package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/spboyer/bidlens/internal/discovery"
)

// pickResultsFile is a test hook for replacing the interactive picker.
// files are ordered newest first.
var pickResultsFile = defaultPickResultsFile

func defaultPickResultsFile(in io.Reader, out io.Writer, files []discovery.ResultsFile) (string, error) {
	if len(files) == 0 {
		return "", fmt.Errorf("no results logs to choose from")
	}

	// Without a terminal there is nobody to ask; take the newest.
	f, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return files[0].Path, nil
	}

	options := make([]huh.Option[string], 0, len(files))
	for _, rf := range files {
		label := fmt.Sprintf("%s  (%s, %s)", rf.Name, rf.ModTime.Format("2006-01-02 15:04"), humanSize(rf.Size))
		options = append(options, huh.NewOption(label, rf.Path))
	}

	choice := files[0].Path
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Results log").
				Options(options...).
				Value(&choice),
		),
	).WithInput(in).WithOutput(out).Run()
	if err != nil {
		return "", fmt.Errorf("choosing results log: %w", err)
	}
	return choice, nil
}

func humanSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
