package fileutil

import (
	"path/filepath"
	"testing"

	"mesclador/internal/testsupport"
)

func TestNextAvailablePathFree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Mesclado_100.pdf")

	got, err := NextAvailablePath(path)
	if err != nil {
		t.Fatalf("NextAvailablePath: %v", err)
	}
	if got != path {
		t.Errorf("got %q, want %q", got, path)
	}
}

func TestNextAvailablePathCollisions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Mesclado_100.pdf")
	testsupport.WriteFile(t, path, "existing")

	got, err := NextAvailablePath(path)
	if err != nil {
		t.Fatalf("NextAvailablePath: %v", err)
	}
	want := filepath.Join(dir, "Mesclado_100 (2).pdf")
	if got != want {
		t.Errorf("first collision: got %q, want %q", got, want)
	}

	testsupport.WriteFile(t, want, "existing")
	got, err = NextAvailablePath(path)
	if err != nil {
		t.Fatalf("NextAvailablePath: %v", err)
	}
	want = filepath.Join(dir, "Mesclado_100 (3).pdf")
	if got != want {
		t.Errorf("second collision: got %q, want %q", got, want)
	}
}

func TestNextAvailablePathNoExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "saida")
	testsupport.WriteFile(t, path, "existing")

	got, err := NextAvailablePath(path)
	if err != nil {
		t.Fatalf("NextAvailablePath: %v", err)
	}
	want := filepath.Join(dir, "saida (2)")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "Mesclados")
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	// Idempotent on existing directories.
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir repeat: %v", err)
	}
}
