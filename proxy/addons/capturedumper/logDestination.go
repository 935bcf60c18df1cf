package capturedumper

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/proxati/oauth_capture/config"
	"github.com/proxati/oauth_capture/internal/fileutils"
	"github.com/proxati/oauth_capture/proxy/addons/capturedumper/formatters"
	"github.com/proxati/oauth_capture/proxy/addons/capturedumper/writers"
	"github.com/proxati/oauth_capture/schema"
)

const logFileSuffix = ".log"

// LogDestination is a struct that holds the configuration for a log destination.
// target: the target of the log destination (e.g., file path, rest API URL)
// kind: which type of writer was selected for the target
// writer: the writer to use for the log destination (e.g., to a dir, to rest API)
// formatter: the formatter to use for the log destination (e.g., JSON, TXT)
// logger: the logger used to print status to the terminal
type LogDestination struct {
	target    string
	kind      LogDestinationKind
	writer    writers.CaptureWriter
	formatter formatters.CaptureFormatter
	logger    *slog.Logger
}

func (ld *LogDestination) String() string {
	if ld.writer == nil {
		return fmt.Sprintf("LogDestination: %s", ld.target)
	}

	return fmt.Sprintf("LogDestination: %s", ld.writer.String())
}

// Kind returns the type of writer used by this destination
func (ld *LogDestination) Kind() LogDestinationKind {
	return ld.kind
}

// Write writes a capture log container to its log destination. The formatter is responsible for
// converting the container to the correct format (json, text, etc) before writing.
func (ld *LogDestination) Write(identifier string, container *schema.CaptureLogContainer) (int, error) {
	bytes, err := ld.formatter.Read(container)
	if err != nil {
		return 0, fmt.Errorf("could not format capture log container: %w", err)
	}
	if len(bytes) == 0 {
		return 0, nil
	}
	return ld.writer.Write(identifier, bytes)
}

// Close releases the writer, when the writer holds an open file
func (ld *LogDestination) Close() error {
	if closer, ok := ld.writer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// CloseLogDestinations closes every destination, returning all errors joined together
func CloseLogDestinations(destinations []LogDestination) error {
	var errs []error
	for i := range destinations {
		if err := destinations[i].Close(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", destinations[i].String(), err))
		}
	}
	return errors.Join(errs...)
}

// NewLogDestinations creates the log destinations for a comma-delimited list of targets:
// logger: the logger used to print status to the terminal
// logTarget: the targets (e.g., directory, file ending in .log, rest API URL), empty means stdout
// format: the format of the log destination (e.g., JSON, TXT)
func NewLogDestinations(
	logger *slog.Logger,
	logTarget string,
	format config.LogFormat,
) ([]LogDestination, error) {
	return newLogDestinations(logger, logTarget, format, nil)
}

// newLogDestinations is NewLogDestinations with a configurable stdout, for tests
func newLogDestinations(
	logger *slog.Logger,
	logTarget string,
	format config.LogFormat,
	stdout io.Writer,
) ([]LogDestination, error) {
	formatter, err := formatters.NewCaptureFormatter(format)
	if err != nil {
		return nil, fmt.Errorf("could not load the formatter: %w", err)
	}

	if strings.TrimSpace(logTarget) == "" {
		// default to stdout if none selected
		writer, err := writers.NewToStdOut(logger, stdout)
		if err != nil {
			return nil, fmt.Errorf("could not create stdout writer: %w", err)
		}

		ld := LogDestination{
			target:    "stdout",
			kind:      WriteToStdOut,
			formatter: formatter,
			writer:    writer,
		}
		ld.logger = logger.With("logDestination", ld.String())
		return []LogDestination{ld}, nil
	}

	LDs := make([]LogDestination, 0)
	for _, target := range strings.Split(logTarget, ",") {
		target = strings.TrimSpace(target)
		target = strings.TrimPrefix(target, "file://")
		if target == "" {
			continue
		}

		ld := LogDestination{
			target:    target,
			formatter: formatter,
		}

		switch {
		case strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://"):
			ld.kind = WriteToREST
			ld.writer, err = writers.NewToAsyncREST(logger, target, formatter)
		case !fileutils.IsValidFilePathFormat(target):
			_ = CloseLogDestinations(LDs)
			return nil, fmt.Errorf("target unhandled by log destination conditionals: %s", target)
		case strings.HasSuffix(target, logFileSuffix):
			ld.kind = WriteToFile
			ld.writer, err = writers.NewToFile(logger, target, formatter)
		default:
			ld.kind = WriteToDir
			ld.writer, err = writers.NewToDir(logger, target, formatter)
		}
		if err != nil {
			_ = CloseLogDestinations(LDs)
			return nil, fmt.Errorf("could not create writer: %w", err)
		}

		ld.logger = logger.With("logDestination", ld.String())
		LDs = append(LDs, ld)
	}

	if len(LDs) == 0 {
		return nil, fmt.Errorf("no valid log destinations found")
	}

	return LDs, nil
}
