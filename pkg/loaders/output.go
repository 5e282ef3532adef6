package loaders

import (
	"fmt"
	"os"
	"path/filepath"
)

// CreateOutput makes sure the parent directory of path exists and creates the file
func CreateOutput(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create output directory %s: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output %s: %w", path, err)
	}
	return file, nil
}
