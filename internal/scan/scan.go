// Package scan discovers merge candidates in a source directory.
package scan

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// ListPDFs returns the names of all regular entries in dir whose name ends in
// ".pdf" (case-insensitive), sorted lexicographically for deterministic
// processing order. Subdirectories are not descended into.
func ListPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read source directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(strings.ToLower(name), ".pdf") {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
