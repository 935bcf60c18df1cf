package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	orig := semVer
	t.Cleanup(func() { semVer = orig })

	tests := []struct {
		input    string
		expected string
	}{
		{"v1.2.3", "1.2.3"},
		{"1.2.3", "1.2.3"},
		{"v0.1.0-dev", "0.1.0-dev"},
		{"not a version", "0.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			semVer = tt.input
			assert.Equal(t, tt.expected, Get().String())
		})
	}
}

func TestString(t *testing.T) {
	orig := semVer
	t.Cleanup(func() { semVer = orig })

	semVer = "v2.0.0"
	assert.True(t, strings.HasPrefix(String(), "v2.0.0"))
}
