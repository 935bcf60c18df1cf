package formatters

import (
	"fmt"

	"github.com/proxati/oauth_capture/config"
)

// NewCaptureFormatter returns an object that implements the CaptureFormatter interface based on
// the requested format.
func NewCaptureFormatter(format config.LogFormat) (CaptureFormatter, error) {
	var f CaptureFormatter

	switch format {
	case config.LogFormatJSON:
		f = &JSON{}
	case config.LogFormatTXT:
		f = &PlainText{}
	default:
		return nil, fmt.Errorf("unsupported log format: %v", format)
	}

	return f, nil
}
