package config

import (
	"log/slog"

	"github.com/proxati/oauth_capture/schema"
)

const (
	DefaultListenAddr = "127.0.0.1:8080"
)

// Config is the main config mega-struct
type Config struct {
	HTTPBehavior   *HTTPBehavior
	TrafficLogger  *TrafficLogger
	Scope          *CaptureScope
	HeaderFilters  *HeaderFiltersContainer
	terminalLogger *terminalLogger
}

func (cfg *Config) getTerminalLogger() *terminalLogger {
	if cfg.terminalLogger == nil {
		cfg.terminalLogger = newTerminalLogger()
	}
	return cfg.terminalLogger
}

// SetLoggerLevel rebuilds the global logger from the verbose/debug/trace settings
func (cfg *Config) SetLoggerLevel() {
	cfg.getTerminalLogger().setLoggerLevel()
}

// GetLoggerLevel returns the current terminal log level
func (cfg *Config) GetLoggerLevel() slog.Level {
	return cfg.getTerminalLogger().getLoggerLevel()
}

// IsTraceEnabled returns true when the source location is added to log lines
func (cfg *Config) IsTraceEnabled() bool {
	return cfg.getTerminalLogger().isTraceEnabled()
}

// IsDebugEnabled returns 1 if the log level is debug, 0 otherwise, for use by the proxy engine
func (cfg *Config) IsDebugEnabled() int {
	return cfg.getTerminalLogger().getDebugLevel()
}

// IsVerboseOrHigher returns true if the log level is verbose or higher
func (cfg *Config) IsVerboseOrHigher() bool {
	tlo := cfg.getTerminalLogger()
	return tlo.Verbose || tlo.Debug || tlo.Trace
}

// GetLogger returns the terminal logger, creating it when needed
func (cfg *Config) GetLogger() *slog.Logger {
	tlo := cfg.getTerminalLogger()
	if tlo.logger == nil {
		tlo.setLoggerLevel()
	}
	return tlo.logger
}

func (cfg *Config) EnableOutputDebug() {
	tlo := cfg.getTerminalLogger()
	tlo.Verbose = false
	tlo.Debug = true
	tlo.Trace = false
	cfg.SetLoggerLevel()
}

func (cfg *Config) EnableOutputVerbose() {
	tlo := cfg.getTerminalLogger()
	tlo.Verbose = true
	tlo.Debug = false
	tlo.Trace = false
	cfg.SetLoggerLevel()
}

func (cfg *Config) EnableOutputTrace() {
	tlo := cfg.getTerminalLogger()
	tlo.Verbose = false
	tlo.Debug = true
	tlo.Trace = true
	cfg.SetLoggerLevel()
}

// SetTerminalOutputFormat sets the terminal log format (json or txt) and rebuilds the logger
func (cfg *Config) SetTerminalOutputFormat(terminalLogFormat string) (LogFormat, error) {
	format, err := StringToLogFormat(terminalLogFormat)
	if err != nil {
		return 0, err
	}

	tlo := cfg.getTerminalLogger()
	tlo.TerminalSloggerFormat = format
	cfg.SetLoggerLevel()
	return format, nil
}

// GetTerminalOutputFormat returns the terminal log format
func (cfg *Config) GetTerminalOutputFormat() LogFormat {
	return cfg.getTerminalLogger().TerminalSloggerFormat
}

// SetTrafficLogFormat sets the output format for captured records (json or txt)
func (cfg *Config) SetTrafficLogFormat(trafficLogFormat string) error {
	format, err := StringToLogFormat(trafficLogFormat)
	if err != nil {
		return err
	}
	cfg.TrafficLogger.TrafficLogFmt = format
	return nil
}

// NewFlowClassifier returns a classifier built from the current capture scope
func (cfg *Config) NewFlowClassifier() *schema.FlowClassifier {
	if cfg.Scope == nil {
		return schema.NewDefaultFlowClassifier()
	}
	return cfg.Scope.NewFlowClassifier()
}

func NewDefaultConfig() *Config {
	return &Config{
		HTTPBehavior: &HTTPBehavior{
			Listen:                DefaultListenAddr,
			CertDir:               "",
			InsecureSkipVerifyTLS: false,
		},
		terminalLogger: newTerminalLogger(),
		TrafficLogger: &TrafficLogger{
			Output:        "",
			TrafficLogFmt: LogFormatTXT,
		},
		Scope:         NewDefaultCaptureScope(),
		HeaderFilters: NewHeaderFiltersContainer(),
	}
}
