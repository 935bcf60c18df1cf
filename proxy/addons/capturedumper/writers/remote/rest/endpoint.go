package rest

import "context"

// Endpoint represents a single REST endpoint
type Endpoint interface {
	String() string // name of the endpoint
	GetURL() string // URL of the endpoint
	POST(ctx context.Context, identifier string, data []byte) error
}
