package schema

import "strings"

var (
	// DefaultScopeHosts are the host substrings of the Claude/Anthropic auth servers
	DefaultScopeHosts = []string{"claude.com", "anthropic.com"}

	// DefaultScopePaths are the path substrings of the OAuth and token-exchange endpoints
	DefaultScopePaths = []string{"oauth", "token"}
)

// FlowClassifier decides if a flow is relevant to capture, based only on the request host and
// path. Matching is a plain case-sensitive substring test, so "anthropic.com.evil.net" and
// "/nottoken123" are both in scope. It is a diagnostic filter, not a security boundary.
type FlowClassifier struct {
	hosts []string
	paths []string
}

// NewFlowClassifier creates a classifier that matches when the host contains any of hosts AND
// the path contains any of paths. Empty lists never match.
func NewFlowClassifier(hosts, paths []string) *FlowClassifier {
	return &FlowClassifier{
		hosts: append([]string{}, hosts...), // copy, the caller may reuse the flag slices
		paths: append([]string{}, paths...),
	}
}

// NewDefaultFlowClassifier returns a classifier using DefaultScopeHosts and DefaultScopePaths
func NewDefaultFlowClassifier() *FlowClassifier {
	return NewFlowClassifier(DefaultScopeHosts, DefaultScopePaths)
}

// IsInScope reports whether a request with this host and path should be captured
func (fc *FlowClassifier) IsInScope(host, path string) bool {
	return containsAny(host, fc.hosts) && containsAny(path, fc.paths)
}

// Hosts returns a copy of the host substrings
func (fc *FlowClassifier) Hosts() []string {
	return append([]string{}, fc.hosts...)
}

// Paths returns a copy of the path substrings
func (fc *FlowClassifier) Paths() []string {
	return append([]string{}, fc.paths...)
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if n == "" {
			continue
		}
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
