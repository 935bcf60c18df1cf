package formatters

import "github.com/proxati/oauth_capture/schema"

// CaptureFormatter abstracts the different output formats for captured records
type CaptureFormatter interface {
	Read(container *schema.CaptureLogContainer) ([]byte, error)
	GetFileExtension() string
	GetContentType() string
	String() string
}
