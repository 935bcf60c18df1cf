package writers

import (
	"context"
	"log/slog"

	"github.com/proxati/oauth_capture/proxy/addons/capturedumper/formatters"
	"github.com/proxati/oauth_capture/proxy/addons/capturedumper/writers/remote/rest"
)

// ToAsyncRest sends every record to a REST endpoint. The POST itself blocks, the addon already
// calls writers from a background goroutine.
type ToAsyncRest struct {
	endpoint  rest.Endpoint
	target    string
	formatter formatters.CaptureFormatter
	logger    *slog.Logger
}

func (t *ToAsyncRest) Write(identifier string, data []byte) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), rest.RequestTimeout)
	defer cancel()

	err := t.endpoint.POST(ctx, identifier, data)
	if err != nil {
		return 0, err
	}
	t.logger.Info("Successfully sent data", "identifier", identifier, "endpoint", t.endpoint.String())
	return len(data), nil
}

func (t *ToAsyncRest) String() string {
	return "ToAsyncRest: " + t.target
}

// NewToAsyncREST creates a writer that POSTs each record to the target URL
func NewToAsyncREST(logger *slog.Logger, target string, formatter formatters.CaptureFormatter) (*ToAsyncRest, error) {
	logger = logger.WithGroup("ToAsyncRest").With("target", target, "formatter", formatter.String())

	return &ToAsyncRest{
		endpoint:  rest.NewEndpointSyncREST(logger, "ToAsyncRest", target, formatter.GetContentType()),
		target:    target,
		formatter: formatter,
		logger:    logger,
	}, nil
}
