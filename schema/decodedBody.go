package schema

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/proxati/oauth_capture/schema/headers"
)

const (
	// FormValueDisplayLimit is the max number of characters shown for a single form value
	FormValueDisplayLimit = 100

	// TruncationMarker is appended to form values that were cut at FormValueDisplayLimit
	TruncationMarker = "..."
)

// ErrMalformedFormEncoding is returned by the form parser when the body is not valid
// x-www-form-urlencoded data. It never leaves this package, DecodePayload turns it into an
// absent form.
var ErrMalformedFormEncoding = errors.New("malformed form encoding")

// FormField is a single key/value pair from a URL-form-encoded body
type FormField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// DisplayValue returns the value cut to FormValueDisplayLimit characters, with the
// TruncationMarker appended when something was removed. Value is left untouched.
func (ff FormField) DisplayValue() string {
	return truncateForDisplay(ff.Value, FormValueDisplayLimit)
}

// DecodedBody is the displayable form of a request or response body
type DecodedBody struct {
	// RawText is always set, invalid UTF-8 is replaced with U+FFFD
	RawText string `json:"raw_text"`

	// Form is nil when the body is not form-encoded, or could not be parsed
	Form []FormField `json:"form,omitempty"`
}

// HasForm returns true when a structured form is available
func (db DecodedBody) HasForm() bool {
	return db.Form != nil
}

// clone returns a DecodedBody that shares no memory with this one
func (db DecodedBody) clone() DecodedBody {
	out := DecodedBody{RawText: db.RawText}
	if db.Form != nil {
		out.Form = append(make([]FormField, 0, len(db.Form)), db.Form...)
	}
	return out
}

// DecodePayload renders a body as text, and when the contentType says the body is
// x-www-form-urlencoded, also as an ordered list of form fields. An empty contentType means the
// header was absent. This function never fails.
//
// Blank values ("a=") and bare keys ("b") are kept as fields with an empty value, so the form
// mirrors everything the client sent.
func DecodePayload(body []byte, contentType string) DecodedBody {
	decoded := DecodedBody{RawText: bytesToText(body)}

	if !strings.Contains(contentType, headers.FormURLEncoded) {
		return decoded
	}

	form, err := parseForm(decoded.RawText)
	if err != nil {
		getLogger().Debug("form body not parsed", "error", err)
		return decoded
	}
	decoded.Form = form
	return decoded
}

// bytesToText decodes UTF-8, substituting U+FFFD for every invalid byte sequence
func bytesToText(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	text, err := unicode.UTF8.NewDecoder().Bytes(body)
	if err != nil {
		// the replacing decoder shouldn't fail, but the stdlib can do the same job
		return strings.ToValidUTF8(string(body), "\uFFFD")
	}
	return string(text)
}

// parseForm splits a form body on '&' into key/value pairs, keeping the original order and every
// occurrence of a repeated key. A ';' is ordinary data. Escapes that decode to invalid UTF-8 are
// replaced with U+FFFD.
func parseForm(raw string) ([]FormField, error) {
	fields := make([]FormField, 0)
	for raw != "" {
		var segment string
		segment, raw, _ = strings.Cut(raw, "&")
		if segment == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(segment, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("%w: key %q: %v", ErrMalformedFormEncoding, rawKey, err)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("%w: value for key %q: %v", ErrMalformedFormEncoding, key, err)
		}
		fields = append(fields, FormField{Key: bytesToText([]byte(key)), Value: bytesToText([]byte(value))})
	}
	return fields, nil
}

// truncateForDisplay cuts s to limit characters (not bytes), appending TruncationMarker if cut
func truncateForDisplay(s string, limit int) string {
	if len(s) <= limit {
		// byte length is an upper bound on the rune count
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + TruncationMarker
}
