package cmd

import (
	"github.com/spf13/cobra"

	"github.com/proxati/oauth_capture/proxy"
)

// proxyRunCmd starts the capture proxy
var proxyRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the proxy, and capture the OAuth traffic sent to the Claude/Anthropic auth servers.",
	Long: `Starts oauth_capture in Man-in-the-Middle (MiTM) mode. Every flow passes through
unchanged, and the requests and responses that match the capture scope are recorded.

## Capture Scope
A flow is captured when its host contains one of the scope hosts AND its path
contains one of the scope paths. The default scope is:
  hosts: claude.com, anthropic.com
  paths: oauth, token

## Common Configuration Options
- --output: Where to write captured records (default: stdout).
- --scope-hosts, --scope-paths: Change the capture scope.
- --traffic-log-format: Write records as txt (default) or json.

## Example Usage

# Start the proxy and print captured OAuth traffic to stdout
./oauth_capture run

# Save each captured record as a JSON file in a directory
./oauth_capture run --traffic-log-format json --output /tmp/oauth

# Capture a different authorization server
./oauth_capture run --scope-hosts auth.example.com --scope-paths /authorize,/token
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return proxy.Run(cfg)
	},
}

func init() {
	rootCmd.AddCommand(proxyRunCmd)
	proxyRunCmd.SuggestFor = proxyRunSuggestions
}
