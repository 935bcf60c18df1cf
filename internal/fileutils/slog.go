package fileutils

import (
	"log/slog"
	"sync"
)

// getLogger waits until first use to read slog.Default(), so the global logger is configured by then
var getLogger = sync.OnceValue(func() *slog.Logger {
	return slog.Default().WithGroup("fileutils")
})
