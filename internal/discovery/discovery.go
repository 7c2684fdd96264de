// Package discovery locates simulation result logs on disk.
package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spboyer/bidlens/internal/loader"
)

// ResultsFile is a results log found during directory traversal.
type ResultsFile struct {
	Name    string // base name
	Path    string // absolute path
	ModTime time.Time
	Size    int64
}

// Compressed reports whether the log is gzip-compressed.
func (f ResultsFile) Compressed() bool {
	return strings.HasSuffix(f.Name, ".gz")
}

// IsResultsFile reports whether name looks like a results log.
func IsResultsFile(name string) bool {
	return strings.HasSuffix(name, ".jsonl") || strings.HasSuffix(name, ".jsonl.gz")
}

// Discover walks root and returns every results log, newest first.
func Discover(root string) ([]ResultsFile, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root path: %w", err)
	}

	// Verify root exists before walking
	if _, err := os.Stat(absRoot); err != nil {
		return nil, fmt.Errorf("root path: %w", err)
	}

	var files []ResultsFile

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible entries
		}

		// Skip hidden directories
		if d.IsDir() && path != absRoot && strings.HasPrefix(d.Name(), ".") {
			return fs.SkipDir
		}

		if d.IsDir() || !IsResultsFile(d.Name()) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		files = append(files, ResultsFile{
			Name:    d.Name(),
			Path:    path,
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", absRoot, err)
	}

	slices.SortFunc(files, func(a, b ResultsFile) int {
		if c := b.ModTime.Compare(a.ModTime); c != 0 {
			return c
		}
		return strings.Compare(a.Path, b.Path)
	})
	return files, nil
}

// Latest returns the most recently modified log under root.
func Latest(root string) (ResultsFile, error) {
	files, err := Discover(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ResultsFile{}, fmt.Errorf("%w: %s", loader.ErrNotFound, root)
		}
		return ResultsFile{}, err
	}
	if len(files) == 0 {
		return ResultsFile{}, fmt.Errorf("%w: no results logs under %s", loader.ErrNotFound, root)
	}
	return files[0], nil
}

// Resolve turns a command-line argument into a log path. An empty argument
// means defaultDir; a directory resolves to its newest log.
func Resolve(arg, defaultDir string) (string, error) {
	target := arg
	if target == "" {
		target = defaultDir
	}

	info, err := os.Stat(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", loader.ErrNotFound, target)
		}
		return "", fmt.Errorf("resolving %s: %w", target, err)
	}
	if !info.IsDir() {
		return target, nil
	}

	latest, err := Latest(target)
	if err != nil {
		return "", err
	}
	return latest.Path, nil
}
