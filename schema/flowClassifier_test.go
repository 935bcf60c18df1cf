package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlowClassifier_IsInScope(t *testing.T) {
	t.Parallel()
	fc := NewDefaultFlowClassifier()

	tests := []struct {
		name     string
		host     string
		path     string
		expected bool
	}{
		{"anthropic token endpoint", "api.anthropic.com", "/v1/oauth/token", true},
		{"claude authorize", "platform.claude.com", "/oauth/authorize", true},
		{"claude token only", "claude.com", "/v1/token", true},
		{"unrelated host", "example.com", "/oauth/token", false},
		{"unrelated path", "platform.claude.com", "/v1/messages", false},
		{"unrelated host and path", "unrelated.org", "/login", false},
		{"empty host", "", "/oauth/token", false},
		{"empty path", "api.anthropic.com", "", false},
		{"both empty", "", "", false},
		{"substring in path", "api.anthropic.com", "/nottoken123", true},
		{"lookalike host", "anthropic.com.evil.net", "/oauth", true},
		{"token in query string", "api.anthropic.com", "/v1/keys?token=1", true},
		{"case sensitive host", "API.ANTHROPIC.COM", "/oauth/token", false},
		{"case sensitive path", "api.anthropic.com", "/OAUTH/TOKEN", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, fc.IsInScope(tt.host, tt.path))
		})
	}
}

func TestFlowClassifier_Custom(t *testing.T) {
	t.Parallel()

	t.Run("custom needles", func(t *testing.T) {
		fc := NewFlowClassifier([]string{"example.com"}, []string{"/login"})
		assert.True(t, fc.IsInScope("auth.example.com", "/login"))
		assert.False(t, fc.IsInScope("api.anthropic.com", "/oauth/token"))
	})

	t.Run("empty needle lists never match", func(t *testing.T) {
		fc := NewFlowClassifier(nil, nil)
		assert.False(t, fc.IsInScope("api.anthropic.com", "/oauth/token"))
	})

	t.Run("empty needle is ignored", func(t *testing.T) {
		fc := NewFlowClassifier([]string{""}, []string{"oauth"})
		assert.False(t, fc.IsInScope("example.com", "/oauth"))
	})

	t.Run("input slices are copied", func(t *testing.T) {
		hosts := []string{"claude.com"}
		fc := NewFlowClassifier(hosts, []string{"oauth"})
		hosts[0] = "example.com"
		assert.True(t, fc.IsInScope("claude.com", "/oauth"))
		assert.Equal(t, []string{"claude.com"}, fc.Hosts())
		assert.Equal(t, []string{"oauth"}, fc.Paths())
	})
}
