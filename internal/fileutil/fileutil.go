// Package fileutil provides filesystem helpers shared by the merge pipeline.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// EnsureDir creates dir and any missing parents with default permissions.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// NextAvailablePath returns path unchanged when nothing exists there.
// Otherwise it probes "stem (2).ext", "stem (3).ext", ... sequentially and
// returns the first free name. Only stat errors other than non-existence are
// reported.
func NextAvailablePath(path string) (string, error) {
	free, err := pathFree(path)
	if err != nil {
		return "", err
	}
	if free {
		return path, nil
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s (%d)%s", stem, n, ext)
		free, err := pathFree(candidate)
		if err != nil {
			return "", err
		}
		if free {
			return candidate, nil
		}
	}
}

func pathFree(path string) (bool, error) {
	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	return false, nil
}
