package config

import (
	"encoding/json"
	"log/slog"
)

// LogSourceConfig holds the configuration toggles for logging request and response data
type LogSourceConfig struct {
	LogRequestHeaders  bool
	LogRequestBody     bool
	LogResponseHeaders bool
	LogResponseBody    bool
}

// NewLogSourceConfig converts the negative command line toggles into a LogSourceConfig
func NewLogSourceConfig(tl *TrafficLogger) LogSourceConfig {
	if tl == nil {
		return LogSourceConfigAllTrue
	}
	return LogSourceConfig{
		LogRequestHeaders:  !tl.NoLogReqHeaders,
		LogRequestBody:     !tl.NoLogReqBody,
		LogResponseHeaders: !tl.NoLogRespHeaders,
		LogResponseBody:    !tl.NoLogRespBody,
	}
}

func (l *LogSourceConfig) String() string {
	bytes, err := json.Marshal(l)
	if err != nil {
		slog.Error("Error marshalling LogSourceConfig", "error", err)
		return ""
	}
	return string(bytes)
}

var LogSourceConfigAllTrue = LogSourceConfig{
	LogRequestHeaders:  true,
	LogRequestBody:     true,
	LogResponseHeaders: true,
	LogResponseBody:    true,
}
