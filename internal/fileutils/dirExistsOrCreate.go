package fileutils

import (
	"fmt"
	"os"
)

// DirExistsOrCreate checks if a directory exists, and creates it if it doesn't
func DirExistsOrCreate(dir string) error {
	getLogger().Debug("Checking if directory exists", "dirName", dir)
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("not a directory: %s", dir)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check if directory exists: %w", err)
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	getLogger().Info("Directory created", "dirName", dir)
	return nil
}
