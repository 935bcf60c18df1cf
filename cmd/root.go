package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/proxati/oauth_capture/cmd/format"
	"github.com/proxati/oauth_capture/config"
)

// https://manytools.org/hacker-tools/ascii-banner/
const introSplashText = `
 ██████╗  █████╗ ██╗   ██╗████████╗██╗  ██╗
██╔═══██╗██╔══██╗██║   ██║╚══██╔══╝██║  ██║
██║   ██║███████║██║   ██║   ██║   ███████║
██║   ██║██╔══██║██║   ██║   ██║   ██╔══██║
╚██████╔╝██║  ██║╚██████╔╝   ██║   ██║  ██║
 ╚═════╝ ╚═╝  ╚═╝ ╚═════╝    ╚═╝   ╚═╝  ╚═╝

 ██████╗ █████╗ ██████╗ ████████╗██╗   ██╗██████╗ ███████╗
██╔════╝██╔══██╗██╔══██╗╚══██╔══╝██║   ██║██╔══██╗██╔════╝
██║     ███████║██████╔╝   ██║   ██║   ██║██████╔╝█████╗
██║     ██╔══██║██╔═══╝    ██║   ██║   ██║██╔══██╗██╔══╝
╚██████╗██║  ██║██║        ██║   ╚██████╔╝██║  ██║███████╗
 ╚═════╝╚═╝  ╚═╝╚═╝        ╚═╝    ╚═════╝ ╚═╝  ╚═╝╚══════╝
`

// converted later to enum values in the config package
var terminalLogFormat string
var trafficLogFormat string
var debugMode bool
var verboseMode bool
var traceMode bool

// optional config sources, applied in PersistentPreRunE
var scopeFile string
var envFile string
var scopeHosts format.FormattedStringSlice
var scopePaths format.FormattedStringSlice

// flagEnvKeys maps the flags that can also be set from the environment to their env var. The
// command line wins when both are set.
var flagEnvKeys = map[string]string{
	"listen":      config.EnvListen,
	"ca_dir":      config.EnvCADir,
	"output":      config.EnvOutput,
	"scope-hosts": config.EnvScopeHosts,
	"scope-paths": config.EnvScopePaths,
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "oauth_capture",
	Short: "Observe the OAuth traffic between a client and the Claude/Anthropic auth servers.",
	Long: `oauth_capture is an HTTP MITM (Man-In-The-Middle) proxy that records the OAuth
authorization and token-exchange traffic sent to the Claude/Anthropic auth servers.

Every other flow passes through the proxy untouched. This is useful for:
  * Debugging: See exactly what an OAuth client sends, and what it receives.
  * Learning: Inspect form-encoded token requests field by field.
`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupTerminalOutputLevel(cfg, debugMode, verboseMode, traceMode)

		logFormat, err := setupLogFormats(cfg, terminalLogFormat, trafficLogFormat)
		if err != nil {
			return err
		}

		if err := loadConfigSources(cmd, cfg); err != nil {
			return err
		}

		s := printSplash(
			cfg.GetLoggerLevel(),
			cfg.GetTerminalOutputFormat(),
			isatty.IsTerminal(os.Stderr.Fd()),
			introSplashText,
		)
		if s != "" {
			fmt.Fprint(cmd.ErrOrStderr(), s)
		}
		cfg.GetLogger().Debug("Global logger setup completed", "TerminalSloggerFormat", logFormat.String())

		cfg.HeaderFilters.BuildIndexes()
		cfg.GetLogger().Debug("Header filter indexes built")
		return nil
	},
	SilenceUsage: true,
}

func setupTerminalOutputLevel(cfg *config.Config, debugMode, verboseMode, traceMode bool) {
	if debugMode {
		if traceMode {
			cfg.EnableOutputTrace()
		} else {
			cfg.EnableOutputDebug()
		}
	} else if verboseMode {
		cfg.EnableOutputVerbose()
	}
}

// printSplash will only show the logo if verbose mode is enabled, on a real terminal, with text output mode
func printSplash(logLevel slog.Level, logFormat config.LogFormat, isTTY bool, txt string) string {
	if !isTTY {
		return ""
	}

	if logFormat != config.LogFormatTXT {
		return ""
	}

	switch logLevel {
	case slog.LevelDebug, slog.LevelInfo:
		return txt
	default:
		return ""
	}
}

// setupLogFormats configures the terminal log format and the capture record format
func setupLogFormats(cfg *config.Config, terminalLogFormat, trafficLogFormat string) (config.LogFormat, error) {
	// set the terminal log format, json or txt
	termLogFormat, termOutErr := cfg.SetTerminalOutputFormat(terminalLogFormat)
	if termOutErr != nil {
		_, _ = cfg.SetTerminalOutputFormat("txt") // default to txt if there's an error
		cfg.GetLogger().Error("Could not setup terminal log", "error", termOutErr)
	}

	// set the capture record format, json or txt
	trafficOutErr := cfg.SetTrafficLogFormat(trafficLogFormat)
	if trafficOutErr != nil {
		cfg.GetLogger().Error("Could not setup traffic log", "error", trafficOutErr)
	}

	if termOutErr != nil || trafficOutErr != nil {
		return 0, fmt.Errorf("could not setup log formats")
	}

	return termLogFormat, nil
}

// loadConfigSources layers the optional config sources, lowest priority first: the defaults,
// the scope file, the environment (and .env file), then the command line.
func loadConfigSources(cmd *cobra.Command, cfg *config.Config) error {
	logger := cfg.GetLogger()

	if scopeFile != "" {
		if err := cfg.Scope.LoadScopeFile(scopeFile); err != nil {
			return err
		}
		logger.Debug("Loaded scope file", "scopeFile", scopeFile)
	}

	skip := make([]string, 0, len(flagEnvKeys))
	for flagName, envKey := range flagEnvKeys {
		if cmd.Flags().Changed(flagName) {
			skip = append(skip, envKey)
		}
	}
	if err := cfg.LoadEnv(envFile, skip...); err != nil {
		return err
	}

	if cmd.Flags().Changed("scope-hosts") {
		cfg.Scope.Hosts = append([]string{}, scopeHosts...)
	}
	if cmd.Flags().Changed("scope-paths") {
		cfg.Scope.Paths = append([]string{}, scopePaths...)
	}
	logger.Debug("Capture scope", "hosts", cfg.Scope.Hosts, "paths", cfg.Scope.Paths)
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.HiddenDefaultCmd = true // don't show the default completion command in help
	rootCmd.PersistentFlags().BoolVarP(
		&verboseMode, "verbose", "v", false, "Print runtime activity to stderr")
	rootCmd.PersistentFlags().BoolVarP(
		&debugMode, "debug", "d", false, "Print debug information to stderr")
	rootCmd.PersistentFlags().BoolVar(
		&traceMode, "trace", false, "Print detailed trace debugging information to stderr, requires --debug to also be set")
	_ = rootCmd.PersistentFlags().MarkHidden("trace")

	rootCmd.PersistentFlags().StringVarP(
		&cfg.HTTPBehavior.Listen, "listen", "l", cfg.HTTPBehavior.Listen,
		"Address to listen on",
	)

	// Certificate Settings
	rootCmd.PersistentFlags().StringVarP(
		&cfg.HTTPBehavior.CertDir, "ca_dir", "c", cfg.HTTPBehavior.CertDir,
		"Path to the local trusted certificate, for TLS MITM",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&cfg.HTTPBehavior.InsecureSkipVerifyTLS, "skip-upstream-tls-verify", "K", cfg.HTTPBehavior.InsecureSkipVerifyTLS,
		"Skip upstream TLS cert verification",
	)

	// Capture Scope Settings
	scopeHosts = append(format.FormattedStringSlice{}, cfg.Scope.Hosts...)
	rootCmd.PersistentFlags().Var(
		&scopeHosts, "scope-hosts",
		"Comma-separated list of host substrings, a flow is captured when its host contains any of them",
	)
	scopePaths = append(format.FormattedStringSlice{}, cfg.Scope.Paths...)
	rootCmd.PersistentFlags().Var(
		&scopePaths, "scope-paths",
		"Comma-separated list of path substrings, a flow is captured when its path contains any of them",
	)
	rootCmd.PersistentFlags().StringVar(
		&scopeFile, "config", "",
		`Path to a YAML file with "hosts:" and "paths:" lists for the capture scope`,
	)
	rootCmd.PersistentFlags().StringVar(
		&envFile, "env-file", config.DefaultEnvFile,
		"Path to a .env file with OAUTH_CAPTURE_* settings",
	)

	// Logging Settings
	rootCmd.PersistentFlags().StringVarP(
		&cfg.TrafficLogger.Output, "output", "o", "",
		`Comma-delimited list of capture destinations. This can be a directory, a
file ending in .log, or a HTTP(s) REST API. If unset, captured records are
printed to stdout.

Examples:
"/tmp/out", "file:///tmp/out", "/tmp/oauth.log", "http://my-api.com/log,/tmp/out"
`,
	)
	rootCmd.PersistentFlags().StringVar(
		&terminalLogFormat, "terminal-log-format", "txt",
		"Screen output format (valid options: json or txt)",
	)
	rootCmd.PersistentFlags().StringVar(
		&trafficLogFormat, "traffic-log-format", "txt",
		"Output format for captured records (valid options: json or txt)",
	)
	rootCmd.PersistentFlags().BoolVar(
		&cfg.TrafficLogger.NoLogReqHeaders, "no-log-req-headers", cfg.TrafficLogger.NoLogReqHeaders,
		"Don't write request headers to captured records",
	)
	rootCmd.PersistentFlags().BoolVar(
		&cfg.TrafficLogger.NoLogReqBody, "no-log-req-body", cfg.TrafficLogger.NoLogReqBody,
		"Don't write request body to captured records",
	)
	rootCmd.PersistentFlags().BoolVar(
		&cfg.TrafficLogger.NoLogRespHeaders, "no-log-resp-headers", cfg.TrafficLogger.NoLogRespHeaders,
		"Don't write response headers to captured records",
	)
	rootCmd.PersistentFlags().BoolVar(
		&cfg.TrafficLogger.NoLogRespBody, "no-log-resp-body", cfg.TrafficLogger.NoLogRespBody,
		"Don't write response body to captured records",
	)

	// "filter-request-headers-to-logs"
	rootCmd.PersistentFlags().Var(
		(*format.FormattedStringSlice)(&cfg.HeaderFilters.RequestToLogs.Headers),
		cfg.HeaderFilters.RequestToLogs.String(),
		`A comma-separated list of request headers to leave out of captured records.
The headers are still forwarded upstream.
`,
	)

	// "filter-response-headers-to-logs"
	rootCmd.PersistentFlags().Var(
		(*format.FormattedStringSlice)(&cfg.HeaderFilters.ResponseToLogs.Headers),
		cfg.HeaderFilters.ResponseToLogs.String(),
		`A comma-separated list of response headers to leave out of captured records.
The headers are still forwarded to the client.
`,
	)
}
