package schema

import (
	"net/http"
	"sort"
	"strings"
)

// Direction is an enum for which side of the flow a CaptureRecord was built from
type Direction int

const (
	// DirectionRequest is a record of a request sent by the client
	DirectionRequest Direction = iota

	// DirectionResponse is a record of a response sent by the upstream server
	DirectionResponse
)

func (d Direction) String() string {
	switch d {
	case DirectionRequest:
		return "REQUEST"
	case DirectionResponse:
		return "RESPONSE"
	default:
		return "UNKNOWN"
	}
}

// MarshalText allows the JSON formatter to write the direction as a string
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// HeaderField is a single header line
type HeaderField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// HeaderSnapshot is an ordered copy of a set of headers. Multi-value headers appear once per
// value. http.Header has no wire order, so the snapshot is sorted by name to stay stable.
type HeaderSnapshot []HeaderField

// NewHeaderSnapshot copies the headers into a new HeaderSnapshot
func NewHeaderSnapshot(h http.Header) HeaderSnapshot {
	names := make([]string, 0, len(h))
	total := 0
	for name, values := range h {
		names = append(names, name)
		total += len(values)
	}
	sort.Strings(names)

	snapshot := make(HeaderSnapshot, 0, total)
	for _, name := range names {
		for _, value := range h[name] {
			snapshot = append(snapshot, HeaderField{Name: name, Value: value})
		}
	}
	return snapshot
}

// Get returns the first value for the header name, compared case-insensitively
func (hs HeaderSnapshot) Get(name string) string {
	for _, hf := range hs {
		if strings.EqualFold(hf.Name, name) {
			return hf.Value
		}
	}
	return ""
}

// Without returns a copy of the snapshot with the named headers removed
func (hs HeaderSnapshot) Without(isFiltered func(name string) bool) HeaderSnapshot {
	out := make(HeaderSnapshot, 0, len(hs))
	for _, hf := range hs {
		if isFiltered(hf.Name) {
			continue
		}
		out = append(out, hf)
	}
	return out
}

// CaptureRecord is the result of inspecting one in-scope request or response. It holds copies
// of everything it needs, and no reference back into the proxy flow.
type CaptureRecord struct {
	Direction      Direction      `json:"direction"`
	MethodOrStatus string         `json:"method_or_status"`
	URL            string         `json:"url"`
	Headers        HeaderSnapshot `json:"headers"`
	Body           DecodedBody    `json:"body"`
	BodyLength     int            `json:"body_length"`
}

// Clone returns a deep copy of the record
func (cr *CaptureRecord) Clone() *CaptureRecord {
	if cr == nil {
		return nil
	}
	out := *cr
	if cr.Headers != nil {
		out.Headers = append(make(HeaderSnapshot, 0, len(cr.Headers)), cr.Headers...)
	}
	out.Body = cr.Body.clone()
	return &out
}
