package discovery

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spboyer/bidlens/internal/loader"
)

// setupLog creates a results file with the given modification time.
func setupLog(t *testing.T, path string, mod time.Time) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, mod, mod); err != nil {
		t.Fatal(err)
	}
}

func TestDiscoverNewestFirst(t *testing.T) {
	root := t.TempDir()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	setupLog(t, filepath.Join(root, "old.jsonl"), base)
	setupLog(t, filepath.Join(root, "new.jsonl.gz"), base.Add(2*time.Hour))
	setupLog(t, filepath.Join(root, "nested", "mid.jsonl"), base.Add(time.Hour))
	setupLog(t, filepath.Join(root, "notes.txt"), base.Add(3*time.Hour))
	setupLog(t, filepath.Join(root, ".hidden", "skip.jsonl"), base.Add(4*time.Hour))

	files, err := Discover(root)
	if err != nil {
		t.Fatal(err)
	}

	if len(files) != 3 {
		t.Fatalf("expected 3 logs, got %d", len(files))
	}
	want := []string{"new.jsonl.gz", "mid.jsonl", "old.jsonl"}
	for i, name := range want {
		if files[i].Name != name {
			t.Errorf("files[%d] = %s, want %s", i, files[i].Name, name)
		}
	}
	if !files[0].Compressed() {
		t.Error("new.jsonl.gz should be reported as compressed")
	}
	if files[1].Compressed() {
		t.Error("mid.jsonl should not be reported as compressed")
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestLatestEmptyDir(t *testing.T) {
	_, err := Latest(t.TempDir())
	if !errors.Is(err, loader.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	older := filepath.Join(root, "a.jsonl")
	newer := filepath.Join(root, "b.jsonl")
	setupLog(t, older, base)
	setupLog(t, newer, base.Add(time.Minute))

	t.Run("explicit file", func(t *testing.T) {
		got, err := Resolve(older, "unused")
		if err != nil {
			t.Fatal(err)
		}
		if got != older {
			t.Errorf("Resolve = %s, want %s", got, older)
		}
	})

	t.Run("directory picks newest", func(t *testing.T) {
		got, err := Resolve(root, "unused")
		if err != nil {
			t.Fatal(err)
		}
		if filepath.Base(got) != "b.jsonl" {
			t.Errorf("Resolve = %s, want b.jsonl", got)
		}
	})

	t.Run("empty arg uses default dir", func(t *testing.T) {
		got, err := Resolve("", root)
		if err != nil {
			t.Fatal(err)
		}
		if filepath.Base(got) != "b.jsonl" {
			t.Errorf("Resolve = %s, want b.jsonl", got)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := Resolve(filepath.Join(root, "missing.jsonl"), "")
		if !errors.Is(err, loader.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestIsResultsFile(t *testing.T) {
	tests := map[string]bool{
		"run.jsonl":     true,
		"run.jsonl.gz":  true,
		"run.json":      false,
		"run.csv":       false,
		"run.jsonl.bak": false,
	}
	for name, want := range tests {
		if got := IsResultsFile(name); got != want {
			t.Errorf("IsResultsFile(%q) = %v, want %v", name, got, want)
		}
	}
}
