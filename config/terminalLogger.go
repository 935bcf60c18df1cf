package config

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// terminalLogger controls the logging output to the terminal while the proxy is running
type terminalLogger struct {
	Verbose               bool      // if true, print runtime activity to stderr
	Debug                 bool      // if true, print debug information to stderr
	Trace                 bool      // if true, print detailed report caller tracing to stderr, for debugging
	TerminalSloggerFormat LogFormat // JSON or TXT ?
	logLevelHasBeenSet    bool      // internal flag to track if the log level has been set
	slogHandlerOpts       *slog.HandlerOptions
	logger                *slog.Logger
	out                   io.Writer
}

func newTerminalLogger() *terminalLogger {
	return &terminalLogger{
		TerminalSloggerFormat: LogFormatTXT,
		slogHandlerOpts:       &slog.HandlerOptions{},
		out:                   os.Stderr,
	}
}

func (tLo *terminalLogger) getWriter() io.Writer {
	if tLo.out == nil {
		return os.Stderr
	}
	return tLo.out
}

// newHandler returns the slog handler for the configured format
func (tLo *terminalLogger) newHandler() slog.Handler {
	switch tLo.TerminalSloggerFormat {
	case LogFormatJSON:
		return slog.NewJSONHandler(tLo.getWriter(), tLo.slogHandlerOpts)
	default:
		return log.NewWithOptions(tLo.getWriter(), log.Options{
			Level:           slogToCharmLevel(tLo.slogHandlerOpts.Level.Level()),
			ReportCaller:    tLo.slogHandlerOpts.AddSource,
			ReportTimestamp: true,
			TimeFormat:      time.TimeOnly,
		})
	}
}

// setLoggerLevel sets the log level based on verbose/debug values in the config object
func (tLo *terminalLogger) setLoggerLevel() {
	tLo.slogHandlerOpts = &slog.HandlerOptions{}
	if tLo.Debug {
		tLo.slogHandlerOpts.Level = slog.LevelDebug
		if tLo.Trace {
			tLo.slogHandlerOpts.AddSource = true
		}
	} else if tLo.Verbose {
		tLo.slogHandlerOpts.Level = slog.LevelInfo
	} else {
		tLo.slogHandlerOpts.Level = slog.LevelWarn
	}

	tLo.logger = slog.New(tLo.newHandler())
	slog.SetDefault(tLo.logger)
	tLo.logger.Debug("Global logger setup completed", "sLogLevel", tLo.slogHandlerOpts.Level)
	tLo.logLevelHasBeenSet = true
}

func (tLo *terminalLogger) getLoggerLevel() slog.Level {
	if !tLo.logLevelHasBeenSet {
		tLo.setLoggerLevel()
	}
	return tLo.slogHandlerOpts.Level.Level()
}

func (tLo *terminalLogger) isTraceEnabled() bool {
	if !tLo.logLevelHasBeenSet {
		tLo.setLoggerLevel()
	}
	return tLo.slogHandlerOpts.AddSource
}

// getDebugLevel returns 1 if the log level is debug, 0 otherwise, for use in the proxy package
func (tLo *terminalLogger) getDebugLevel() int {
	if tLo.getLoggerLevel() == slog.LevelDebug {
		return 1
	}
	return 0
}

func slogToCharmLevel(level slog.Level) log.Level {
	switch {
	case level <= slog.LevelDebug:
		return log.DebugLevel
	case level <= slog.LevelInfo:
		return log.InfoLevel
	case level <= slog.LevelWarn:
		return log.WarnLevel
	default:
		return log.ErrorLevel
	}
}
