package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormattedStringSlice(t *testing.T) {
	t.Run("set splits on commas", func(t *testing.T) {
		var f FormattedStringSlice
		require.NoError(t, f.Set("claude.com,anthropic.com"))
		assert.Equal(t, FormattedStringSlice{"claude.com", "anthropic.com"}, f)
		assert.Equal(t, "[claude.com, anthropic.com]", f.String())
		assert.Equal(t, "strings", f.Type())
	})

	t.Run("set replaces the default", func(t *testing.T) {
		f := FormattedStringSlice{"oauth", "token"}
		require.NoError(t, f.Set("authorize"))
		assert.Equal(t, FormattedStringSlice{"authorize"}, f)
	})

	t.Run("long values wrap", func(t *testing.T) {
		f := FormattedStringSlice{
			"a-very-long-header-name-number-one",
			"a-very-long-header-name-number-two",
			"a-very-long-header-name-number-three",
		}
		assert.Contains(t, f.String(), "\n\t")
	})

	t.Run("empty", func(t *testing.T) {
		var f FormattedStringSlice
		assert.Equal(t, "[]", f.String())
	})
}
