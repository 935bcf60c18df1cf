package writers

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// ToStdOut writes records to stdout (or another io.Writer), one complete record at a time
type ToStdOut struct {
	out    io.Writer
	mu     sync.Mutex
	logger *slog.Logger
}

// NewToStdOut creates a new ToStdOut writer object, a nil out means os.Stdout
func NewToStdOut(logger *slog.Logger, out io.Writer) (*ToStdOut, error) {
	if out == nil {
		out = os.Stdout
	}
	return &ToStdOut{
		out:    out,
		logger: logger.With("writer", "ToStdOut"),
	}, nil
}

// Write writes the given bytes, serialized so that records from concurrent flows never interleave
func (t *ToStdOut) Write(identifier string, bytes []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	n, err := t.out.Write(bytes)
	if err != nil {
		return n, err
	}
	if len(bytes) > 0 && bytes[len(bytes)-1] != '\n' {
		if _, err := t.out.Write([]byte{'\n'}); err != nil {
			return n, err
		}
	}
	t.logger.Debug("Wrote record", "identifier", identifier, "bytes", n)
	return n, nil
}

// String returns the human-readable name of this writer
func (t *ToStdOut) String() string {
	return "ToStdOut"
}
