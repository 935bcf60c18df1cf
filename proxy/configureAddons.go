package proxy

import (
	"fmt"
	"log/slog"

	"github.com/proxati/oauth_capture/config"
	"github.com/proxati/oauth_capture/proxy/addons"
)

// configureCaptureAddon creates the OAuth capture addon from the scope, output, and filter
// settings. Unlike the connection logger it is always enabled, with stdout as the default output.
func configureCaptureAddon(logger *slog.Logger, cfg *config.Config) (*addons.OAuthCaptureAddon, error) {
	captureAddon, err := addons.NewOAuthCaptureAddon(
		logger,
		cfg.NewFlowClassifier(),
		cfg.TrafficLogger.Output,
		cfg.TrafficLogger.TrafficLogFmt,
		config.NewLogSourceConfig(cfg.TrafficLogger),
		cfg.HeaderFilters.RequestToLogs,
		cfg.HeaderFilters.ResponseToLogs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OAuth capture addon: %w", err)
	}

	return captureAddon, nil
}
