package formatters

import (
	"fmt"
	"strings"

	"github.com/proxati/oauth_capture/schema"
)

const (
	txtExt = ".txt"

	bannerWidth = 80

	// ResponsePreviewLimit is the max number of characters of a response body shown as text
	ResponsePreviewLimit = 1000
)

var banner = strings.Repeat("=", bannerWidth)

// PlainText is a formatter that renders a CaptureLogContainer as a human-readable console report
type PlainText struct{}

// Read returns the text report for the record in the container
func (f *PlainText) Read(container *schema.CaptureLogContainer) ([]byte, error) {
	if container == nil || container.Record == nil {
		return []byte{}, nil
	}

	var sb strings.Builder
	record := container.Record
	switch record.Direction {
	case schema.DirectionRequest:
		writeRequest(&sb, record)
	case schema.DirectionResponse:
		writeResponse(&sb, record)
	default:
		return nil, fmt.Errorf("unknown record direction: %v", record.Direction)
	}
	return []byte(sb.String()), nil
}

func writeRequest(sb *strings.Builder, record *schema.CaptureRecord) {
	fmt.Fprintf(sb, "\n%s\n", banner)
	fmt.Fprintf(sb, "🔍 CAPTURED REQUEST: %s %s\n", record.MethodOrStatus, record.URL)
	fmt.Fprintf(sb, "%s\n", banner)

	writeHeaders(sb, record.Headers)

	if record.BodyLength > 0 {
		sb.WriteString("\n📦 BODY:\n")
		fmt.Fprintf(sb, "  Raw: %s\n", record.Body.RawText)
		fmt.Fprintf(sb, "  Length: %d bytes\n", record.BodyLength)

		if record.Body.HasForm() {
			sb.WriteString("\n  Parsed form data:\n")
			for _, field := range record.Body.Form {
				fmt.Fprintf(sb, "    %s = %s\n", field.Key, field.DisplayValue())
			}
		}
	}

	fmt.Fprintf(sb, "\n%s\n\n", banner)
}

func writeResponse(sb *strings.Builder, record *schema.CaptureRecord) {
	fmt.Fprintf(sb, "\n%s\n", banner)
	fmt.Fprintf(sb, "📥 RESPONSE: %s for %s\n", record.MethodOrStatus, record.URL)
	fmt.Fprintf(sb, "%s\n", banner)

	writeHeaders(sb, record.Headers)

	if record.BodyLength > 0 {
		fmt.Fprintf(sb, "\n📦 RESPONSE BODY:\n%s\n", preview(record.Body.RawText, ResponsePreviewLimit))
	}

	fmt.Fprintf(sb, "\n%s\n\n", banner)
}

func writeHeaders(sb *strings.Builder, headers schema.HeaderSnapshot) {
	if len(headers) == 0 {
		return
	}
	sb.WriteString("\n📋 HEADERS:\n")
	for _, h := range headers {
		fmt.Fprintf(sb, "  %s: %s\n", h.Name, h.Value)
	}
}

// preview returns the first limit characters of s
func preview(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// GetFileExtension returns the file extension for a plain text file
func (f *PlainText) GetFileExtension() string {
	return txtExt
}

// GetContentType returns the MIME type used when sending text to a REST endpoint
func (f *PlainText) GetContentType() string {
	return "text/plain; charset=utf-8"
}

// String returns the name of the formatter
func (f *PlainText) String() string {
	return "PlainText"
}
