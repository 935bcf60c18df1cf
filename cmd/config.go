package cmd

import "github.com/proxati/oauth_capture/config"

// cfg is a reasonable default configuration, used by all commands
var cfg *config.Config = config.NewDefaultConfig()

// suggestions are here instead of their respective files bc it's easier to see them all in one place
var proxyRunSuggestions = []string{
	"proxy", "capture", "start", "mitm",
}
