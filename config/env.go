package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvListen     = "OAUTH_CAPTURE_LISTEN"
	EnvCADir      = "OAUTH_CAPTURE_CA_DIR"
	EnvOutput     = "OAUTH_CAPTURE_OUTPUT"
	EnvScopeHosts = "OAUTH_CAPTURE_SCOPE_HOSTS"
	EnvScopePaths = "OAUTH_CAPTURE_SCOPE_PATHS"

	DefaultEnvFile = ".env"
)

// LoadEnv reads an optional .env file into the process environment, and then applies any
// OAUTH_CAPTURE_* variables on top of the current config, except for the keys in skip (used
// for values already set on the command line). A missing default .env file is not an error, a
// missing file that was asked for by name is.
func (cfg *Config) LoadEnv(envFile string, skip ...string) error {
	if envFile == "" {
		envFile = DefaultEnvFile
	}

	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || envFile != DefaultEnvFile {
			return fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
		slog.Debug("no env file loaded", "envFile", envFile)
	}

	cfg.applyEnv(skip)
	return nil
}

func (cfg *Config) applyEnv(skip []string) {
	getEnv := func(key string) string {
		if slices.Contains(skip, key) {
			return ""
		}
		return os.Getenv(key)
	}

	if v := getEnv(EnvListen); v != "" {
		cfg.HTTPBehavior.Listen = v
	}
	if v := getEnv(EnvCADir); v != "" {
		cfg.HTTPBehavior.CertDir = v
	}
	if v := getEnv(EnvOutput); v != "" {
		cfg.TrafficLogger.Output = v
	}
	if v, ok := splitList(getEnv(EnvScopeHosts)); ok {
		cfg.Scope.Hosts = v
	}
	if v, ok := splitList(getEnv(EnvScopePaths)); ok {
		cfg.Scope.Paths = v
	}
}

// splitList splits a comma-delimited value, ignoring blank items
func splitList(val string) ([]string, bool) {
	if val == "" {
		return nil, false
	}

	out := make([]string, 0)
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out, true
}
