package proxyadapters

import (
	"net/http"
	"net/url"
)

// RequestReaderAdapter is an interface for reading request data from any proxy object that has
// been abstracted by this interface.
type RequestReaderAdapter interface {
	GetMethod() string
	GetURL() *url.URL
	GetHeaders() http.Header
	GetBodyBytes() []byte
}

// ResponseReaderAdapter is an interface for reading response data from any proxy object that has
// been abstracted by this interface. A response carries no host or path of its own, so the
// originating request is reachable through GetRequest.
type ResponseReaderAdapter interface {
	GetStatusCode() int
	GetHeaders() http.Header
	GetBodyBytes() []byte
	GetRequest() RequestReaderAdapter
}
