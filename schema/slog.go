package schema

import (
	"log/slog"
	"sync"
)

// getLogger is lazy so the package doesn't capture slog.Default() before the CLI has configured it
var getLogger = sync.OnceValue(func() *slog.Logger {
	return slog.Default().WithGroup("schema")
})
