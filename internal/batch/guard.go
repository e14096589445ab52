package batch

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// CheckDirectories refuses an output directory that is the input directory,
// by path or by identity on disk. A missing output directory is accepted.
func CheckDirectories(inputDir, outputDir string) error {
	return checkOutput(outputDir, []string{inputDir})
}

// CheckOutput refuses an output directory that holds any of the input sheets.
func CheckOutput(outputDir string, inputs []string) error {
	dirs := make([]string, 0, len(inputs))
	for _, input := range inputs {
		dirs = append(dirs, filepath.Dir(input))
	}

	return checkOutput(outputDir, dirs)
}

func checkOutput(outputDir string, inputDirs []string) error {
	out, err := filepath.Abs(outputDir)
	if err != nil {
		return fmt.Errorf("resolving output directory %s: %w", outputDir, err)
	}

	outInfo, err := os.Stat(out)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading output directory %s: %w", outputDir, err)
	}

	seen := make(map[string]struct{}, len(inputDirs))

	for _, inputDir := range inputDirs {
		dir, err := filepath.Abs(inputDir)
		if err != nil {
			return fmt.Errorf("resolving input directory %s: %w", inputDir, err)
		}

		if _, ok := seen[dir]; ok {
			continue
		}

		seen[dir] = struct{}{}

		if dir == out {
			return fmt.Errorf("%w: %s", ErrSameDirectory, outputDir)
		}

		if outInfo == nil {
			continue
		}

		if inInfo, err := os.Stat(dir); err == nil && os.SameFile(inInfo, outInfo) {
			return fmt.Errorf("%w: %s", ErrSameDirectory, outputDir)
		}
	}

	return nil
}
