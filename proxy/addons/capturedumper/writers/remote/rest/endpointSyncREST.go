package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/proxati/oauth_capture/schema/headers"
)

const (
	RequestTimeout           = 5 * time.Second
	MaxResponseBodyReadBytes = 1024 // 1KB
)

// EndpointSyncREST represents a single REST endpoint, and implements the Endpoint interface
type EndpointSyncREST struct {
	Name        string
	URL         string
	contentType string
	client      *http.Client
	logger      *slog.Logger
}

func NewEndpointSyncREST(logger *slog.Logger, name, url, contentType string) *EndpointSyncREST {
	return &EndpointSyncREST{
		Name:        name,
		URL:         url,
		contentType: contentType,
		client:      &http.Client{Timeout: RequestTimeout},
		logger:      logger.WithGroup("EndpointSyncREST"),
	}
}

// String returns the name of the endpoint
func (e *EndpointSyncREST) String() string {
	return fmt.Sprintf("SyncREST: %s", e.Name)
}

// GetURL returns the URL of the endpoint
func (e *EndpointSyncREST) GetURL() string {
	return e.URL
}

// POST is a simple blocking POST to a REST endpoint, any 2xx status is a success
func (e *EndpointSyncREST) POST(ctx context.Context, identifier string, data []byte) error {
	logger := e.logger.With("identifier", identifier)
	logger.Debug("POST'ing data", "endpoint", e.String(), "timeout", RequestTimeout)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.GetURL(), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}

	req.Header.Set(headers.ContentType, e.contentType)
	if identifier != "" {
		req.Header.Set(headers.CaptureIdentifier, identifier)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("could not send request: %w", err)
	}
	defer resp.Body.Close()

	limitedReader := io.LimitedReader{R: resp.Body, N: MaxResponseBodyReadBytes}
	bodyBytes, err := io.ReadAll(&limitedReader)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}

	logger.Debug("Sent data to endpoint", "status", resp.Status, "body", string(bodyBytes))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("received non-2xx response: %d", resp.StatusCode)
	}
	return nil
}
