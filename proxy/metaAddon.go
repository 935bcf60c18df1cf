package proxy

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	px "github.com/proxati/mitmproxy/proxy"

	"github.com/proxati/oauth_capture/config"
	"github.com/proxati/oauth_capture/proxy/addons"
)

// metaAddon is the only addon loaded by the upstream library, and all of our internal addons
// are processed here. This keeps the upstream library behind a single seam.
type metaAddon struct {
	px.BaseAddon
	cfg            *config.Config
	mitmAddons     []px.Addon
	closableAddons []addons.ClosableAddon
	logger         *slog.Logger
}

// newMetaAddon creates a new metaAddon with the given config and addons. The addons are called
// in the order they are given.
func newMetaAddon(logger *slog.Logger, cfg *config.Config, addons ...px.Addon) *metaAddon {
	m := &metaAddon{
		cfg:    cfg,
		logger: logger.WithGroup("metaAddon"),
	}

	// iterate so the addons can be type asserted and added to the correct field
	for _, a := range addons {
		if err := m.addAddon(a); err != nil {
			m.logger.Error("could not add the addon", "error", err)
		}
	}

	return m
}

// Close closes every closable addon, in the order they were added
func (addon *metaAddon) Close() error {
	var errs []error
	for _, a := range addon.closableAddons {
		if err := a.Close(); err != nil {
			addon.logger.Error("could not close the addon", "addonName", a.String(), "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", a.String(), err))
			continue
		}
		addon.logger.Debug("Closed addon", "addonName", a.String())
	}

	return errors.Join(errs...)
}

func (addon *metaAddon) String() string {
	return "metaAddon"
}

func (addon *metaAddon) addAddon(a any) error {
	if a == nil {
		addon.logger.Debug("Skipping add for nil addon")
		return nil
	}

	mitmAddon, ok := a.(px.Addon)
	if !ok {
		return fmt.Errorf("invalid addon type: %T", a)
	}
	addon.mitmAddons = append(addon.mitmAddons, mitmAddon)

	if myAddon, ok := a.(addons.ClosableAddon); ok {
		addon.closableAddons = append(addon.closableAddons, myAddon) // for closing later
		addon.logger.Debug("Loaded closable addon", "addonName", myAddon.String())
	}

	return nil
}

func (addon *metaAddon) ClientConnected(client *px.ClientConn) {
	for _, a := range addon.mitmAddons {
		a.ClientConnected(client)
	}
}

func (addon *metaAddon) ClientDisconnected(client *px.ClientConn) {
	for _, a := range addon.mitmAddons {
		a.ClientDisconnected(client)
	}
}

func (addon *metaAddon) ServerConnected(ctx *px.ConnContext) {
	for _, a := range addon.mitmAddons {
		a.ServerConnected(ctx)
	}
}

func (addon *metaAddon) ServerDisconnected(ctx *px.ConnContext) {
	for _, a := range addon.mitmAddons {
		a.ServerDisconnected(ctx)
	}
}

func (addon *metaAddon) TlsEstablishedServer(ctx *px.ConnContext) {
	for _, a := range addon.mitmAddons {
		a.TlsEstablishedServer(ctx)
	}
}

func (addon *metaAddon) Requestheaders(flow *px.Flow) {
	for _, a := range addon.mitmAddons {
		a.Requestheaders(flow)
		if flow.Response != nil {
			// the response has been set, stop processing addons
			break
		}
	}
}

func (addon *metaAddon) Request(flow *px.Flow) {
	for _, a := range addon.mitmAddons {
		a.Request(flow)
		if flow.Response != nil {
			// the response has been set, stop processing addons
			break
		}
	}
}

func (addon *metaAddon) Responseheaders(flow *px.Flow) {
	for _, a := range addon.mitmAddons {
		a.Responseheaders(flow)
	}
}

func (addon *metaAddon) Response(flow *px.Flow) {
	for _, a := range addon.mitmAddons {
		a.Response(flow)
	}
}

func (addon *metaAddon) StreamRequestModifier(flow *px.Flow, in io.Reader) io.Reader {
	for _, a := range addon.mitmAddons {
		in = a.StreamRequestModifier(flow, in)
	}
	return in
}

func (addon *metaAddon) StreamResponseModifier(flow *px.Flow, in io.Reader) io.Reader {
	for _, a := range addon.mitmAddons {
		in = a.StreamResponseModifier(flow, in)
	}
	return in
}
