package addons

import (
	"log/slog"
	"net"

	px "github.com/proxati/mitmproxy/proxy"
)

// StdOutLogger logs client and server connection events, enabled with --verbose
type StdOutLogger struct {
	px.BaseAddon
	logger *slog.Logger
}

func (addon *StdOutLogger) ClientConnected(client *px.ClientConn) {
	addon.logger.Info("client connect", "clientAddress", clientAddr(client))
}

func (addon *StdOutLogger) ClientDisconnected(client *px.ClientConn) {
	addon.logger.Info("client disconnect", "clientAddress", clientAddr(client))
}

func (addon *StdOutLogger) ServerConnected(connCtx *px.ConnContext) {
	addon.logger.Info("server connect", serverAttrs(connCtx)...)
}

func (addon *StdOutLogger) ServerDisconnected(connCtx *px.ConnContext) {
	addon.logger.Info("server disconnect", serverAttrs(connCtx)...)
}

func (addon *StdOutLogger) String() string {
	return "StdOutLogger"
}

func clientAddr(client *px.ClientConn) net.Addr {
	if client == nil || client.Conn == nil {
		return nil
	}
	return client.Conn.RemoteAddr()
}

func serverAttrs(connCtx *px.ConnContext) []any {
	if connCtx == nil || connCtx.ServerConn == nil {
		return nil
	}
	attrs := []any{"serverAddress", connCtx.ServerConn.Address}
	if conn := connCtx.ServerConn.Conn; conn != nil {
		attrs = append(attrs,
			"localAddress", conn.LocalAddr(),
			"remoteAddress", conn.RemoteAddr(),
		)
	}
	return attrs
}

func NewStdOutLogger(logger *slog.Logger) *StdOutLogger {
	return &StdOutLogger{logger: logger.WithGroup("addons.StdOutLogger")}
}
