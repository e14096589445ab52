package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// Discover lists the regular files directly inside dir whose names accept
// reports true, sorted by name. Subdirectories are not searched.
func Discover(dir string, accept func(name string) bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing input directory %s: %w", dir, err)
	}

	paths := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !accept(entry.Name()) {
			continue
		}

		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	return paths, nil
}

// Expand replaces every directory in paths with the accepted files directly
// inside it, keeps accepted files, and drops duplicates.
func Expand(paths []string, accept func(name string) bool) ([]string, error) {
	out := make([]string, 0, len(paths))

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		if info.IsDir() {
			found, err := Discover(path, accept)
			if err != nil {
				return nil, err
			}

			out = append(out, found...)

			continue
		}

		if accept(filepath.Base(path)) {
			out = append(out, filepath.Clean(path))
		}
	}

	slices.Sort(out)

	return slices.Compact(out), nil
}
