package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proxati/oauth_capture/cmd/format"
	"github.com/proxati/oauth_capture/config"
)

func TestSetupTerminalOutputLevel(t *testing.T) {
	tests := []struct {
		name        string
		debugMode   bool
		verboseMode bool
		traceMode   bool
	}{
		{"DebugMode", true, false, false},
		{"VerboseMode", false, true, false},
		{"TraceMode", true, false, true},
		{"DefaultMode", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewDefaultConfig()
			cfg.SetLoggerLevel() // two constructors for the logger is annoying

			setupTerminalOutputLevel(cfg, tt.debugMode, tt.verboseMode, tt.traceMode)
			if tt.debugMode {
				assert.Equal(t, slog.LevelDebug, cfg.GetLoggerLevel())
				assert.Equal(t, tt.traceMode, cfg.IsTraceEnabled())
			} else if tt.verboseMode {
				assert.Equal(t, slog.LevelInfo, cfg.GetLoggerLevel())
				assert.False(t, cfg.IsTraceEnabled())
			} else {
				assert.Equal(t, slog.LevelWarn, cfg.GetLoggerLevel())
				assert.False(t, cfg.IsTraceEnabled())
			}
		})
	}
}

func TestPrintSplash(t *testing.T) {
	splashText := "testing"
	tests := []struct {
		testName       string
		logLvl         slog.Level
		logFmt         config.LogFormat
		isTerminal     bool
		expectedOutput string
	}{
		{"LevelDebug_TXT_Terminal", slog.LevelDebug, config.LogFormatTXT, true, splashText},
		{"LevelDebug_TXT_NonTerminal", slog.LevelDebug, config.LogFormatTXT, false, ""},
		{"LevelDebug_JSON_Terminal", slog.LevelDebug, config.LogFormatJSON, true, ""},
		{"LevelDebug_JSON_NonTerminal", slog.LevelDebug, config.LogFormatJSON, false, ""},

		{"LevelInfo_TXT_Terminal", slog.LevelInfo, config.LogFormatTXT, true, splashText},
		{"LevelInfo_TXT_NonTerminal", slog.LevelInfo, config.LogFormatTXT, false, ""},
		{"LevelInfo_JSON_Terminal", slog.LevelInfo, config.LogFormatJSON, true, ""},
		{"LevelInfo_JSON_NonTerminal", slog.LevelInfo, config.LogFormatJSON, false, ""},

		{"LevelWarn_TXT_Terminal", slog.LevelWarn, config.LogFormatTXT, true, ""},
		{"LevelWarn_TXT_NonTerminal", slog.LevelWarn, config.LogFormatTXT, false, ""},
		{"LevelWarn_JSON_Terminal", slog.LevelWarn, config.LogFormatJSON, true, ""},
		{"LevelWarn_JSON_NonTerminal", slog.LevelWarn, config.LogFormatJSON, false, ""},

		{"LevelError_TXT_Terminal", slog.LevelError, config.LogFormatTXT, true, ""},
		{"LevelError_JSON_Terminal", slog.LevelError, config.LogFormatJSON, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.testName, func(t *testing.T) {
			sp := printSplash(tt.logLvl, tt.logFmt, tt.isTerminal, splashText)
			assert.Equal(t, tt.expectedOutput, sp)
		})
	}
}

func TestSetupLogFormats(t *testing.T) {
	tests := []struct {
		name               string
		terminalLogFormat  string
		trafficLogFormat   string
		expectedTermFmt    config.LogFormat
		expectedTrafficFmt config.LogFormat
		expectError        bool
	}{
		{"ValidFormats_TXT_JSON", "txt", "json", config.LogFormatTXT, config.LogFormatJSON, false},
		{"ValidFormats_JSON_TXT", "json", "txt", config.LogFormatJSON, config.LogFormatTXT, false},
		{"InvalidTerminalFormat", "invalid", "json", config.LogFormatTXT, config.LogFormatJSON, true},
		{"InvalidTrafficFormat", "txt", "invalid", config.LogFormatTXT, config.LogFormatJSON, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewDefaultConfig()
			logFmt, err := setupLogFormats(cfg, tt.terminalLogFormat, tt.trafficLogFormat)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedTermFmt, cfg.GetTerminalOutputFormat())
				assert.Equal(t, tt.expectedTrafficFmt, cfg.TrafficLogger.TrafficLogFmt)
				assert.Equal(t, tt.expectedTermFmt, logFmt)
			}
		})
	}
}

// newFlagCmd returns a command with the flags used by loadConfigSources, bound to cfg
func newFlagCmd(cfg *config.Config) *cobra.Command {
	c := &cobra.Command{Use: "test"}
	c.Flags().StringVar(&cfg.HTTPBehavior.Listen, "listen", cfg.HTTPBehavior.Listen, "")
	c.Flags().StringVar(&cfg.HTTPBehavior.CertDir, "ca_dir", cfg.HTTPBehavior.CertDir, "")
	c.Flags().StringVar(&cfg.TrafficLogger.Output, "output", "", "")
	c.Flags().Var(&scopeHosts, "scope-hosts", "")
	c.Flags().Var(&scopePaths, "scope-paths", "")
	return c
}

func TestLoadConfigSources(t *testing.T) {
	// these tests change package-level flag variables and the process environment
	resetGlobals := func() {
		scopeFile = ""
		envFile = filepath.Join(t.TempDir(), "missing.env")
		scopeHosts = format.FormattedStringSlice{}
		scopePaths = format.FormattedStringSlice{}
	}

	t.Run("defaults", func(t *testing.T) {
		resetGlobals()
		cfg := config.NewDefaultConfig()
		envFile = "" // a missing default .env file is fine

		require.NoError(t, loadConfigSources(newFlagCmd(cfg), cfg))
		assert.Equal(t, []string{"claude.com", "anthropic.com"}, cfg.Scope.Hosts)
		assert.Equal(t, []string{"oauth", "token"}, cfg.Scope.Paths)
	})

	t.Run("missing named env file", func(t *testing.T) {
		resetGlobals()
		cfg := config.NewDefaultConfig()

		require.Error(t, loadConfigSources(newFlagCmd(cfg), cfg))
	})

	t.Run("scope file, env, then flags", func(t *testing.T) {
		resetGlobals()
		dir := t.TempDir()

		scopeFile = filepath.Join(dir, "scope.yaml")
		require.NoError(t, os.WriteFile(scopeFile, []byte("hosts:\n  - file.example.com\npaths:\n  - /file\n"), 0o600))

		envFile = filepath.Join(dir, "test.env")
		require.NoError(t, os.WriteFile(envFile, []byte(""), 0o600))
		t.Setenv(config.EnvScopePaths, "/env-path")
		t.Setenv(config.EnvListen, "127.0.0.1:9999")
		t.Setenv(config.EnvOutput, "/tmp/from-env")

		cfg := config.NewDefaultConfig()
		c := newFlagCmd(cfg)
		require.NoError(t, c.Flags().Parse([]string{"--scope-hosts", "flag.example.com", "--output", "/tmp/from-flag"}))

		require.NoError(t, loadConfigSources(c, cfg))
		assert.Equal(t, []string{"flag.example.com"}, cfg.Scope.Hosts, "flag wins over the scope file")
		assert.Equal(t, []string{"/env-path"}, cfg.Scope.Paths, "env wins over the scope file")
		assert.Equal(t, "127.0.0.1:9999", cfg.HTTPBehavior.Listen)
		assert.Equal(t, "/tmp/from-flag", cfg.TrafficLogger.Output, "flag wins over env")
	})

	t.Run("missing scope file", func(t *testing.T) {
		resetGlobals()
		scopeFile = filepath.Join(t.TempDir(), "nope.yaml")
		cfg := config.NewDefaultConfig()

		err := loadConfigSources(newFlagCmd(cfg), cfg)
		require.ErrorIs(t, err, config.ErrScopeFileNotFound)
	})

	resetGlobals()
	envFile = config.DefaultEnvFile
}
