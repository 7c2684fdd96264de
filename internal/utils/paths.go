package utils

import "path/filepath"

// ResolvePath resolves path against baseDir. Absolute paths, empty paths and
// an empty baseDir leave path unchanged.
func ResolvePath(path, baseDir string) string {
	if path == "" || baseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
