package config

import (
	"net/http"
	"sync"
)

const (
	// FlagTitle_FilterRequestHeadersToLogs is the name of the filter group for headers to be filtered from requests to logs
	FlagTitle_FilterRequestHeadersToLogs = "filter-request-headers-to-logs"

	// FlagTitle_FilterResponseHeadersToLogs is the name of the filter group for headers to be filtered from responses to logs
	FlagTitle_FilterResponseHeadersToLogs = "filter-response-headers-to-logs"
)

type headerIndex map[string]struct{}

// HeaderFilterGroup is a named set of header names to drop from the output. Names are matched
// case-insensitively.
type HeaderFilterGroup struct {
	Headers []string
	index   headerIndex
	name    string
	mu      sync.RWMutex
}

func NewHeaderFilterGroup(name string, headers []string) *HeaderFilterGroup {
	hfg := &HeaderFilterGroup{
		Headers: append([]string{}, headers...), // shallow copy the slice
		name:    name,
	}
	hfg.buildIndex()
	return hfg
}

func (hfg *HeaderFilterGroup) String() string {
	return hfg.name
}

func (hfg *HeaderFilterGroup) buildIndex() {
	index := make(headerIndex, len(hfg.Headers))
	for _, header := range hfg.Headers {
		if header == "" {
			continue
		}
		index[http.CanonicalHeaderKey(header)] = struct{}{}
	}

	hfg.mu.Lock()
	defer hfg.mu.Unlock()
	hfg.index = index
}

// IsHeaderInGroup returns true when the header should be filtered
func (hfg *HeaderFilterGroup) IsHeaderInGroup(header string) bool {
	hfg.mu.RLock()
	defer hfg.mu.RUnlock()
	_, exists := hfg.index[http.CanonicalHeaderKey(header)]
	return exists
}

// IsEmpty returns true when the group filters nothing
func (hfg *HeaderFilterGroup) IsEmpty() bool {
	hfg.mu.RLock()
	defer hfg.mu.RUnlock()
	return len(hfg.index) == 0
}

// FilterHeaders returns a copy of the headers without the headers in this group
func (hfg *HeaderFilterGroup) FilterHeaders(headers http.Header) http.Header {
	filteredHeaders := make(http.Header, len(headers))
	for header, values := range headers {
		if !hfg.IsHeaderInGroup(header) {
			filteredHeaders[header] = append([]string{}, values...)
		}
	}
	return filteredHeaders
}

// HeaderFiltersContainer holds the configuration for filtering headers from captured records
type HeaderFiltersContainer struct {
	// Headers sent by the client, to be removed from the request records
	RequestToLogs *HeaderFilterGroup // filter-request-headers-to-logs

	// Headers sent by upstream, to be removed from the response records
	ResponseToLogs *HeaderFilterGroup // filter-response-headers-to-logs
}

// NewHeaderFiltersContainer creates a new HeaderFiltersContainer. Nothing is filtered by
// default, tokens and cookies are the data this tool exists to show.
func NewHeaderFiltersContainer() *HeaderFiltersContainer {
	return &HeaderFiltersContainer{
		RequestToLogs:  NewHeaderFilterGroup(FlagTitle_FilterRequestHeadersToLogs, []string{}),
		ResponseToLogs: NewHeaderFilterGroup(FlagTitle_FilterResponseHeadersToLogs, []string{}),
	}
}

// BuildIndexes rebuilds the internal indexes for the header filters, run this after the
// Headers slices are changed by the command line parser.
func (hfc *HeaderFiltersContainer) BuildIndexes() {
	wg := sync.WaitGroup{}
	wg.Add(2)
	go func() {
		defer wg.Done()
		hfc.RequestToLogs.buildIndex()
	}()
	go func() {
		defer wg.Done()
		hfc.ResponseToLogs.buildIndex()
	}()
	wg.Wait()
}
