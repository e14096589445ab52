package batch

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// prepareOutput creates the output directory if it doesn't exist.
func prepareOutput(outputDir string) error {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	return nil
}

func writeSheet(outputDir, name string, content []byte) (string, error) {
	path := filepath.Join(outputDir, name)

	if err := os.WriteFile(path, content, filePerm); err != nil {
		return "", fmt.Errorf("writing sheet %s: %w", name, err)
	}

	return path, nil
}
