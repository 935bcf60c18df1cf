package capturedumper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proxati/oauth_capture/config"
	"github.com/proxati/oauth_capture/schema"
)

func TestNewLogDestinations(t *testing.T) {
	logger := slog.Default()
	invalidPath := `/c:\/../*^`

	t.Run("Empty logTarget defaults to stdout", func(t *testing.T) {
		configs, err := NewLogDestinations(logger, "", config.LogFormatJSON)
		require.NoError(t, err)
		require.Len(t, configs, 1)
		assert.Equal(t, "stdout", configs[0].target)
		assert.Equal(t, WriteToStdOut, configs[0].Kind())
	})

	t.Run("Valid file path with file:// prefix creates writer for directory", func(t *testing.T) {
		tmpDir := t.TempDir()

		configs, err := NewLogDestinations(logger, "file://"+tmpDir, config.LogFormatJSON)
		require.NoError(t, err)
		require.Len(t, configs, 1)
		assert.Equal(t, tmpDir, configs[0].target)
		assert.Equal(t, WriteToDir, configs[0].Kind())
	})

	t.Run("Valid file path without file:// prefix creates writer for directory", func(t *testing.T) {
		tmpDir := t.TempDir()

		configs, err := NewLogDestinations(logger, tmpDir, config.LogFormatJSON)
		require.NoError(t, err)
		require.Len(t, configs, 1)
		assert.Equal(t, tmpDir, configs[0].target)
	})

	t.Run("Path ending in .log creates writer for a single file", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "capture.log")

		configs, err := NewLogDestinations(logger, logFile, config.LogFormatTXT)
		require.NoError(t, err)
		require.Len(t, configs, 1)
		assert.Equal(t, WriteToFile, configs[0].Kind())
		assert.NoError(t, CloseLogDestinations(configs))
	})

	t.Run("Valid file path with http:// prefix creates writer for an asyncREST", func(t *testing.T) {
		exampleURL := "http://example.com"

		configs, err := NewLogDestinations(logger, exampleURL, config.LogFormatJSON)
		require.NoError(t, err)
		require.Len(t, configs, 1)
		assert.Equal(t, exampleURL, configs[0].target)
		assert.Equal(t, WriteToREST, configs[0].Kind())
	})

	t.Run("Valid file path with https:// prefix creates writer for an asyncREST", func(t *testing.T) {
		exampleURL := "https://example.com"

		configs, err := NewLogDestinations(logger, exampleURL, config.LogFormatJSON)
		require.NoError(t, err)
		require.Len(t, configs, 1)
		assert.Equal(t, exampleURL, configs[0].target)
	})

	t.Run("Valid file paths with a mix of file:// http:// prefixes creates multiple writers", func(t *testing.T) {
		exampleURL := "https://example.com"
		tmpDir := t.TempDir()

		configs, err := NewLogDestinations(logger, exampleURL+", "+tmpDir, config.LogFormatJSON)
		require.NoError(t, err)
		require.Len(t, configs, 2)
		assert.Equal(t, exampleURL, configs[0].target)
		assert.Equal(t, tmpDir, configs[1].target)
	})

	t.Run("Empty items in the list are skipped", func(t *testing.T) {
		tmpDir1 := t.TempDir()
		tmpDir2 := t.TempDir()

		configs, err := NewLogDestinations(logger, tmpDir1+",,"+tmpDir2+",", config.LogFormatJSON)
		require.NoError(t, err)
		require.Len(t, configs, 2)
		assert.Equal(t, tmpDir1, configs[0].target)
		assert.Equal(t, tmpDir2, configs[1].target)
	})

	t.Run("Only commas returns error", func(t *testing.T) {
		_, err := NewLogDestinations(logger, ",,", config.LogFormatJSON)
		require.Error(t, err)
	})

	t.Run("Invalid file path returns error", func(t *testing.T) {
		_, err := NewLogDestinations(logger, invalidPath, config.LogFormatJSON)
		require.Error(t, err)
	})

	t.Run("Unsupported format returns error", func(t *testing.T) {
		_, err := NewLogDestinations(logger, "", config.LogFormat(99))
		require.Error(t, err)
	})

	t.Run("Multiple valid and invalid targets", func(t *testing.T) {
		tmpDir1 := t.TempDir()
		tmpDir2 := t.TempDir()

		configs, err := NewLogDestinations(logger, fmt.Sprintf("file://%s,%s,%s", tmpDir1, invalidPath, tmpDir2), config.LogFormatJSON)
		require.Error(t, err)
		require.Nil(t, configs)
	})
}

func TestLogDestination_Write(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	tmpDir := t.TempDir()

	logDestinations, err := NewLogDestinations(logger, "file://"+tmpDir, config.LogFormatJSON)
	require.NoError(t, err)
	require.Len(t, logDestinations, 1)
	logDestination := logDestinations[0]

	container := &schema.CaptureLogContainer{
		ObjectType:    "testing",
		SchemaVersion: "99",
		Timestamp:     time.Now(),
		FlowID:        "flow",
		Record: &schema.CaptureRecord{
			Direction:      schema.DirectionResponse,
			MethodOrStatus: "200",
			URL:            "https://api.anthropic.com/oauth/token",
		},
	}

	identifier := "test_identifier"
	_, err = logDestination.Write(identifier, container)
	require.NoError(t, err)

	expectedFilePath := filepath.Join(tmpDir, identifier+".json")
	assert.FileExists(t, expectedFilePath)

	content, err := os.ReadFile(expectedFilePath)
	require.NoError(t, err)

	expectedJSON, err := json.Marshal(container)
	require.NoError(t, err)
	assert.JSONEq(t, string(expectedJSON), string(content))
}

func TestLogDestination_WriteToStdOut(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	logDestinations, err := newLogDestinations(slog.Default(), "", config.LogFormatTXT, buf)
	require.NoError(t, err)
	require.Len(t, logDestinations, 1)

	container := schema.NewCaptureLogContainer("flow", &schema.CaptureRecord{
		Direction:      schema.DirectionRequest,
		MethodOrStatus: "GET",
		URL:            "https://platform.claude.com/oauth/authorize",
	})
	n, err := logDestinations[0].Write("flow_request", container)
	require.NoError(t, err)
	assert.Positive(t, n)
	assert.Contains(t, buf.String(), "CAPTURED REQUEST: GET https://platform.claude.com/oauth/authorize")

	n, err = logDestinations[0].Write("empty", schema.NewCaptureLogContainerWithDefaults())
	require.NoError(t, err)
	assert.Equal(t, 0, n, "nothing to print")
}

func TestLogDestinationKind_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "WriteToFile", WriteToFile.String())
	assert.Equal(t, "WriteToDir", WriteToDir.String())
	assert.Equal(t, "WriteToStdOut", WriteToStdOut.String())
	assert.Equal(t, "WriteToREST", WriteToREST.String())
	assert.Equal(t, "", LogDestinationKind(42).String())
}
