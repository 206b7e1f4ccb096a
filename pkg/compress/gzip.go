// Package compress wraps response bodies in gzip framing when the client
// asked for it.
package compress

import (
	"bytes"
	"compress/gzip"
	"strconv"
	"strings"
)

// Gzip returns data as a complete gzip stream (header, deflate payload,
// CRC32 and size trailer) at the default compression level.
func Gzip(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.DefaultCompression)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(data); err != nil {
		_ = zw.Close()
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// AcceptsGzip reports whether an Accept-Encoding value lists the gzip
// token. Tokens are compared whole, so "gzipx" or "x-gzip-ish" do not
// count, and an explicit q=0 is a refusal.
func AcceptsGzip(acceptEncoding string) bool {
	for _, item := range strings.Split(acceptEncoding, ",") {
		token, params, _ := strings.Cut(item, ";")
		if !strings.EqualFold(strings.TrimSpace(token), "gzip") {
			continue
		}
		return !zeroQuality(params)
	}
	return false
}

func zeroQuality(params string) bool {
	for _, p := range strings.Split(params, ";") {
		name, value, ok := strings.Cut(strings.TrimSpace(p), "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(name), "q") {
			continue
		}
		q, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		return err == nil && q == 0
	}
	return false
}
