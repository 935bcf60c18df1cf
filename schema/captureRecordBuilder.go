package schema

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/proxati/oauth_capture/schema/headers"
	"github.com/proxati/oauth_capture/schema/proxyadapters"
	"github.com/proxati/oauth_capture/schema/utils"
)

// CaptureRecordBuilder turns in-scope requests and responses into CaptureRecords. It has no
// mutable fields, so a single builder can be shared by every connection handled by the proxy.
type CaptureRecordBuilder struct {
	classifier *FlowClassifier
	logger     *slog.Logger
}

// NewCaptureRecordBuilder creates a builder, a nil classifier means NewDefaultFlowClassifier
func NewCaptureRecordBuilder(logger *slog.Logger, classifier *FlowClassifier) *CaptureRecordBuilder {
	if classifier == nil {
		classifier = NewDefaultFlowClassifier()
	}
	return &CaptureRecordBuilder{
		classifier: classifier,
		logger:     logger.WithGroup("CaptureRecordBuilder"),
	}
}

// Classifier returns the classifier used to gate records
func (b *CaptureRecordBuilder) Classifier() *FlowClassifier {
	return b.classifier
}

// OnRequest returns a record of the request, or false when the request is out of scope
func (b *CaptureRecordBuilder) OnRequest(req proxyadapters.RequestReaderAdapter) (*CaptureRecord, bool) {
	if req == nil {
		return nil, false
	}

	host, path, fullURL := requestTarget(req)
	if !b.classifier.IsInScope(host, path) {
		return nil, false
	}
	b.logger.Debug("request in scope", "URL", fullURL)

	return b.newRecord(DirectionRequest, req.GetMethod(), fullURL, req.GetHeaders(), req.GetBodyBytes()), true
}

// OnResponse returns a record of the response, or false when the originating request is out of
// scope. A response without a body (empty, or streamed by the proxy) gives an empty body.
func (b *CaptureRecordBuilder) OnResponse(resp proxyadapters.ResponseReaderAdapter) (*CaptureRecord, bool) {
	if resp == nil {
		return nil, false
	}
	req := resp.GetRequest()
	if req == nil {
		b.logger.Debug("response has no request, unable to classify")
		return nil, false
	}

	host, path, fullURL := requestTarget(req)
	if !b.classifier.IsInScope(host, path) {
		return nil, false
	}
	b.logger.Debug("response in scope", "URL", fullURL, "StatusCode", resp.GetStatusCode())

	status := strconv.Itoa(resp.GetStatusCode())
	return b.newRecord(DirectionResponse, status, fullURL, resp.GetHeaders(), resp.GetBodyBytes()), true
}

func (b *CaptureRecordBuilder) newRecord(
	direction Direction,
	methodOrStatus string,
	fullURL string,
	h http.Header,
	body []byte,
) *CaptureRecord {
	return &CaptureRecord{
		Direction:      direction,
		MethodOrStatus: methodOrStatus,
		URL:            fullURL,
		Headers:        NewHeaderSnapshot(h),
		Body:           DecodePayload(b.contentDecode(h, body), headerValue(h, headers.ContentType)),
		BodyLength:     len(body),
	}
}

// contentDecode undoes any Content-Encoding, falling back to the raw bytes when that fails
func (b *CaptureRecordBuilder) contentDecode(h http.Header, body []byte) []byte {
	encoding := headerValue(h, headers.ContentEncoding)
	if encoding == "" || len(body) == 0 {
		return body
	}

	decoded, err := utils.DecodeBody(body, encoding)
	if err != nil {
		b.logger.Debug("unable to decode body, using raw bytes", "encoding", encoding, "error", err)
		return body
	}
	return decoded
}

// requestTarget returns the host (without port), the path with query string, and the full URL
func requestTarget(req proxyadapters.RequestReaderAdapter) (host, path, fullURL string) {
	u := req.GetURL()
	if u == nil {
		return "", "", ""
	}
	host = u.Hostname()
	if host == "" {
		// origin-form request without an absolute URL, fall back to the Host header
		host = headerValue(req.GetHeaders(), "Host")
		if h, _, err := net.SplitHostPort(host); err == nil {
			host = h
		}
	}
	return host, u.RequestURI(), u.String()
}

// headerValue is a case-insensitive lookup, for header maps built without canonical keys
func headerValue(h http.Header, name string) string {
	if v := h.Get(name); v != "" {
		return v
	}
	for k, values := range h {
		if strings.EqualFold(k, name) && len(values) > 0 {
			return values[0]
		}
	}
	return ""
}
