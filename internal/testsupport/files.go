// Package testsupport provides shared helpers for package tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes contents to path, creating parent directories as needed.
func WriteFile(t testing.TB, path, contents string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// SourceDir creates a temp directory pre-populated with the given filenames,
// each holding placeholder contents, and returns its path.
func SourceDir(t testing.TB, names ...string) string {
	t.Helper()

	dir := t.TempDir()
	for _, name := range names {
		WriteFile(t, filepath.Join(dir, name), "%PDF-1.4 placeholder")
	}
	return dir
}
