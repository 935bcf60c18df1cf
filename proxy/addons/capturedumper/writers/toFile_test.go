package writers

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proxati/oauth_capture/proxy/addons/capturedumper/formatters"
)

func TestToFile_Write(t *testing.T) {
	t.Parallel()

	t.Run("json lines", func(t *testing.T) {
		t.Parallel()
		target := filepath.Join(t.TempDir(), "logs", "capture.log")
		toFile, err := NewToFile(slog.Default(), target, &formatters.JSON{})
		require.NoError(t, err)
		t.Cleanup(func() { _ = toFile.Close() })
		assert.Equal(t, "ToFile: "+target, toFile.String())

		_, err = toFile.Write("one", []byte("{\n  \"a\": 1\n}"))
		require.NoError(t, err)
		_, err = toFile.Write("two", []byte("{\n  \"b\": 2\n}"))
		require.NoError(t, err)

		content, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "{\"a\":1}\n{\"b\":2}\n", string(content))
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()
		target := filepath.Join(t.TempDir(), "capture.log")
		toFile, err := NewToFile(slog.Default(), target, &formatters.JSON{})
		require.NoError(t, err)
		t.Cleanup(func() { _ = toFile.Close() })

		_, err = toFile.Write("bad", []byte("{"))
		assert.Error(t, err)
	})

	t.Run("plain text", func(t *testing.T) {
		t.Parallel()
		target := filepath.Join(t.TempDir(), "capture.log")
		toFile, err := NewToFile(slog.Default(), target, &formatters.PlainText{})
		require.NoError(t, err)
		t.Cleanup(func() { _ = toFile.Close() })

		data := []byte("line one\nline two")
		_, err = toFile.Write("one", data)
		require.NoError(t, err)
		assert.Equal(t, "line one\nline two", string(data), "input is not modified")

		content, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "line one\nline two\n", string(content))
	})
}
