package utils

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
)

const (
	gzipEncoding     = "gzip"
	deflateEncoding  = "deflate"
	brotliEncoding   = "br"
	identityEncoding = "identity"
)

// DecodeBody decompresses a byte array (request or response body) based on the content
// encoding. A header listing several encodings (e.g. "gzip, br") is undone in reverse order.
func DecodeBody(body []byte, contentEncoding string) ([]byte, error) {
	encodings := strings.Split(contentEncoding, ",")
	decodedBody := body
	for i := len(encodings) - 1; i >= 0; i-- {
		var err error
		decodedBody, err = decodeOne(decodedBody, strings.ToLower(strings.TrimSpace(encodings[i])))
		if err != nil {
			return nil, err
		}
	}
	return decodedBody, nil
}

func decodeOne(body []byte, contentEncoding string) (decodedBody []byte, err error) {
	switch contentEncoding {
	case gzipEncoding, "x-gzip":
		reader, err := gzip.NewReader(bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("gzip decompress error: %w", err)
		}
		defer reader.Close()
		decodedBody, err = io.ReadAll(reader)
		if err != nil {
			return nil, fmt.Errorf("gzip reader error: %w", err)
		}
	case deflateEncoding:
		reader := flate.NewReader(bytes.NewReader(body))
		defer reader.Close()
		decodedBody, err = io.ReadAll(reader)
		if err != nil {
			return nil, fmt.Errorf("deflate reader error: %w", err)
		}
	case brotliEncoding:
		reader := brotli.NewReader(bytes.NewReader(body))
		decodedBody, err = io.ReadAll(reader)
		if err != nil {
			return nil, fmt.Errorf("brotli reader error: %w", err)
		}
	case "", identityEncoding:
		// no encoding, do nothing
		return body, nil
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", contentEncoding)
	}

	return decodedBody, nil
}
