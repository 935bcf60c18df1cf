package writers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/proxati/oauth_capture/internal/fileutils"
	"github.com/proxati/oauth_capture/proxy/addons/capturedumper/formatters"
)

const (
	DefaultMaxFileSizeMB = 100
	DefaultMaxBackups    = 10
	DefaultMaxAgeDays    = 30
)

// ToFile appends every record to a single file, rotated when it grows past DefaultMaxFileSizeMB.
// JSON records are compacted to one line each.
type ToFile struct {
	target    string
	jsonLines bool
	rotator   *lumberjack.Logger
	mu        sync.Mutex
	logger    *slog.Logger
}

// NewToFile creates a new ToFile writer object, creating the parent directory when needed
func NewToFile(logger *slog.Logger, target string, formatter formatters.CaptureFormatter) (*ToFile, error) {
	if err := fileutils.DirExistsOrCreate(filepath.Dir(target)); err != nil {
		return nil, err
	}

	return &ToFile{
		target:    target,
		jsonLines: formatter.GetFileExtension() == (&formatters.JSON{}).GetFileExtension(),
		rotator: &lumberjack.Logger{
			Filename:   target,
			MaxSize:    DefaultMaxFileSizeMB,
			MaxBackups: DefaultMaxBackups,
			MaxAge:     DefaultMaxAgeDays,
		},
		logger: logger.With("writer", "ToFile"),
	}, nil
}

// Write appends the bytes to the file, followed by a newline
func (t *ToFile) Write(identifier string, data []byte) (int, error) {
	if t.jsonLines {
		var compacted bytes.Buffer
		if err := json.Compact(&compacted, data); err != nil {
			return 0, fmt.Errorf("could not compact JSON record: %w", err)
		}
		data = compacted.Bytes()
	}

	line := make([]byte, 0, len(data)+1)
	line = append(append(line, data...), '\n')

	t.mu.Lock()
	defer t.mu.Unlock()

	n, err := t.rotator.Write(line)
	if err != nil {
		return n, fmt.Errorf("could not write to %s: %w", t.target, err)
	}
	t.logger.Debug("Wrote record", "identifier", identifier, "bytes", n)
	return n, nil
}

// Close closes the current log file
func (t *ToFile) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rotator.Close()
}

// String returns the the name of this writer, and the target file
func (t *ToFile) String() string {
	return "ToFile: " + t.target
}
