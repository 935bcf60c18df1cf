package formatters

import (
	"encoding/json"
	"fmt"

	"github.com/proxati/oauth_capture/schema"
)

const jsonExt = ".json"

// JSON is a formatter that converts the CaptureLogContainer into a JSON formatted byte array
type JSON struct{}

// Read returns the JSON representation of a CaptureLogContainer (JSON formatted byte array)
func (f *JSON) Read(container *schema.CaptureLogContainer) ([]byte, error) {
	if container == nil {
		return []byte("{}"), nil
	}

	j, err := json.MarshalIndent(container, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal CaptureLogContainer to JSON: %w", err)
	}
	return j, nil
}

// GetFileExtension returns the file extension for a JSON file
func (f *JSON) GetFileExtension() string {
	return jsonExt
}

// GetContentType returns the MIME type used when sending JSON to a REST endpoint
func (f *JSON) GetContentType() string {
	return "application/json"
}

// String returns the name of the formatter
func (f *JSON) String() string {
	return "JSON"
}
