package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// FileExists returns true when something exists at the path
func FileExists(fileName string) bool {
	_, err := os.Stat(fileName)
	return err == nil
}

// CreateUniqueFileName returns a path in dir built from the identifier and extension, adding a
// numeric suffix when a file with that name already exists.
func CreateUniqueFileName(dir, identifier, extension string, counter int) string {
	for {
		name := identifier
		if counter > 0 {
			name += "_" + strconv.Itoa(counter)
		}
		fileName := filepath.Join(dir, name+extension)
		if !FileExists(fileName) {
			return fileName
		}
		counter++
	}
}

// CreateNewFileFromFilename given a file name, this creates a new file on-disk for writing logs.
func CreateNewFileFromFilename(fileName string) (*os.File, error) {
	getLogger().Debug("Creating/opening file", "fileName", fileName)

	file, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %v: %w", fileName, err)
	}
	return file, nil
}
