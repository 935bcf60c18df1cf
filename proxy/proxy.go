package proxy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/proxati/mitmproxy/cert"
	px "github.com/proxati/mitmproxy/proxy"

	"github.com/proxati/oauth_capture/config"
	"github.com/proxati/oauth_capture/proxy/addons"
	"github.com/proxati/oauth_capture/version"
)

const shutdownTimeout = 60 * time.Second

func newCA(logger *slog.Logger, certDir string) (*cert.CA, error) {
	if certDir == "" {
		logger.Debug("No cert dir specified, defaulting to ~/.mitmproxy/")
	} else {
		logger.Debug("Loading certs", "certDir", certDir)
	}

	l, err := cert.NewPathLoader(certDir)
	if err != nil {
		return nil, fmt.Errorf("unable to create or load certs from %v: %w", certDir, err)
	}

	ca, err := cert.New(l)
	if err != nil {
		return nil, fmt.Errorf("problem with CA config: %w", err)
	}

	return ca, nil
}

// newProxy returns a new proxy object with some basic configuration
func newProxy(logger *slog.Logger, listenOn string, skipVerifyTLS bool, ca *cert.CA) (*px.Proxy, error) {
	opts := &px.Options{
		Addr:                  listenOn,
		InsecureSkipVerifyTLS: skipVerifyTLS,
		CA:                    ca,
		StreamLargeBodies:     1024 * 1024 * 100, // responses larger than 100MB will be streamed
		Logger:                logger.WithGroup("mitmproxy"),
	}

	p, err := px.NewProxy(opts)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// configProxy returns a configured proxy object w/ addons. This proxy still needs to be "started"
// with a blocking call to .Start() (which is handled elsewhere)
func configProxy(logger *slog.Logger, cfg *config.Config) (*px.Proxy, error) {
	metaAdd := newMetaAddon(logger, cfg)

	ca, err := newCA(logger, cfg.HTTPBehavior.CertDir)
	if err != nil {
		return nil, fmt.Errorf("setupCA error: %w", err)
	}

	p, err := newProxy(logger, cfg.HTTPBehavior.Listen, cfg.HTTPBehavior.InsecureSkipVerifyTLS, ca)
	if err != nil {
		return nil, fmt.Errorf("failed to create proxy: %w", err)
	}

	if cfg.IsVerboseOrHigher() {
		// log connection events
		if err := metaAdd.addAddon(addons.NewStdOutLogger(logger)); err != nil {
			return nil, err
		}
	}

	captureAddon, err := configureCaptureAddon(logger, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create capture addon: %w", err)
	}
	logger.Debug(
		"Created "+captureAddon.String(),
		"output", cfg.TrafficLogger.Output,
		"logFormat", cfg.TrafficLogger.TrafficLogFmt.String(),
		"scopeHosts", captureAddon.Classifier().Hosts(),
		"scopePaths", captureAddon.Classifier().Paths(),
	)
	if err := metaAdd.addAddon(captureAddon); err != nil {
		return nil, err
	}

	// add our single metaAddon abstraction to the proxy
	p.AddAddon(metaAdd)

	return p, nil
}

// startProxy receives a pointer to a proxy object, runs it, and handles the shutdown signal
func startProxy(logger *slog.Logger, p *px.Proxy, shutdown chan os.Signal) error {
	go func() {
		<-shutdown
		logger.Info("Received shutdown signal, closing addons and proxy...")

		// Close all of the "closable" addons (prevent truncating file or network writes)
		for _, addon := range p.Addons {
			myAddon, ok := addon.(addons.ClosableAddon)
			if !ok {
				continue
			}
			logger.Debug("Closing addon", "addonName", myAddon)
			if err := myAddon.Close(); err != nil {
				logger.Error(
					"Could not close addon",
					"addon", myAddon,
					"error", err,
				)
			}
		}

		logger.Debug("Closing proxy server...")

		// Manual sleep to avoid a race condition on connection close
		time.Sleep(100 * time.Millisecond)

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := p.Shutdown(ctx); err != nil {
			logger.Error("Unexpected error shutting down proxy server", "error", err)
		}
	}()

	// Block here while the proxy is running
	if err := p.Start(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("proxy server error: %w", err)
	}
	return nil
}

// Run is the main entry point for the proxy, configures the proxy and runs it
func Run(cfg *config.Config) error {
	logger := cfg.GetLogger().WithGroup("proxy")
	logger.Info("Starting oauth_capture", "version", version.String(), "listen", cfg.HTTPBehavior.Listen)

	// setup background signal handler for clean shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	p, err := configProxy(logger, cfg)
	if err != nil {
		return fmt.Errorf("failed to configure proxy: %w", err)
	}

	if err := startProxy(logger, p, shutdown); err != nil {
		return fmt.Errorf("failed to start proxy: %w", err)
	}
	logger.Info("oauth_capture shutdown complete")

	return nil
}
