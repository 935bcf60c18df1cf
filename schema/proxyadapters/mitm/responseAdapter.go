package mitm

import (
	"maps"
	"net/http"

	px "github.com/proxati/mitmproxy/proxy"

	"github.com/proxati/oauth_capture/schema/proxyadapters"
)

// ProxyResponseAdapter implements the proxyadapters.ResponseReaderAdapter interface
type ProxyResponseAdapter struct {
	pxResp     *px.Response
	headerCopy http.Header
	req        *ProxyRequestAdapter
}

// NewProxyResponseAdapter creates a new response adapter object. The request is the one that
// produced this response, it's needed to classify the response.
func NewProxyResponseAdapter(pxResp *px.Response, pxReq *px.Request) *ProxyResponseAdapter {
	req := NewProxyRequestAdapter(pxReq)
	if pxResp == nil {
		return &ProxyResponseAdapter{
			pxResp:     &px.Response{Header: http.Header{}},
			headerCopy: http.Header{},
			req:        req,
		}
	}

	// shallow copy of the headers to prevent race conditions
	headerCopy := http.Header{}
	maps.Copy(headerCopy, pxResp.Header)

	return &ProxyResponseAdapter{pxResp: pxResp, headerCopy: headerCopy, req: req}
}

// GetStatusCode returns the status code, to implement the ResponseReaderAdapter interface
func (r *ProxyResponseAdapter) GetStatusCode() int {
	return r.pxResp.StatusCode
}

// GetHeaders returns the headers, to implement the ResponseReaderAdapter interface
func (r *ProxyResponseAdapter) GetHeaders() http.Header {
	return r.headerCopy
}

// GetBodyBytes returns the response body, to implement the ResponseReaderAdapter interface. A
// streamed response has no body here.
func (r *ProxyResponseAdapter) GetBodyBytes() []byte {
	return r.pxResp.Body
}

// GetRequest returns the originating request, to implement the ResponseReaderAdapter interface
func (r *ProxyResponseAdapter) GetRequest() proxyadapters.RequestReaderAdapter {
	return r.req
}
