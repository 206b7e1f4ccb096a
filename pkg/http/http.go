package http

import (
	"io"
	"strings"
)

// Method constants for HTTP requests.
const (
	MethodGet     = "GET"
	MethodHead    = "HEAD"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodDelete  = "DELETE"
	MethodOptions = "OPTIONS"
	MethodPatch   = "PATCH"
)

// Status codes produced by the server.
const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusBadRequest          = 400
	StatusNotFound            = 404
	StatusMethodNotAllowed    = 405
	StatusInternalServerError = 500
)

// ProtocolHTTP11 is the only protocol version the server speaks.
const ProtocolHTTP11 = "HTTP/1.1"

// DefaultReadBufferSize is the size of the single read performed per
// connection. Anything beyond it is never seen by the decoder.
const DefaultReadBufferSize = 1024

// Header names (canonicalized).
const (
	HeaderAcceptEncoding  = "Accept-Encoding"
	HeaderAllow           = "Allow"
	HeaderConnection      = "Connection"
	HeaderContentEncoding = "Content-Encoding"
	HeaderContentLength   = "Content-Length"
	HeaderContentType     = "Content-Type"
	HeaderHost            = "Host"
	HeaderUserAgent       = "User-Agent"
)

// Content types.
const (
	ContentTypeText   = "text/plain"
	ContentTypeBinary = "application/octet-stream"
)

// EncodingGzip is the only content coding the server produces.
const EncodingGzip = "gzip"

const crlf = "\r\n"

// Field is a single header line.
type Field struct {
	Name  string
	Value string
}

// Header is an ordered list of header fields. Lookups compare names
// case-insensitively and match the whole name, never a prefix.
type Header []Field

// Get returns the first value for the given key, case-insensitive.
// Returns empty string if key not found.
func (h Header) Get(key string) string {
	v, _ := h.Lookup(key)
	return v
}

// Lookup is like Get but also reports whether the key was present.
func (h Header) Lookup(key string) (string, bool) {
	for _, f := range h {
		if strings.EqualFold(f.Name, key) {
			return f.Value, true
		}
	}
	return "", false
}

// Values returns every value recorded for key, in order.
func (h Header) Values(key string) []string {
	var vv []string
	for _, f := range h {
		if strings.EqualFold(f.Name, key) {
			vv = append(vv, f.Value)
		}
	}
	return vv
}

// Set replaces the first field named key and drops any later duplicates.
// A missing key is appended, so insertion order is preserved.
func (h *Header) Set(key, value string) {
	for i, f := range *h {
		if strings.EqualFold(f.Name, key) {
			(*h)[i].Value = value
			h.delFrom(key, i+1)
			return
		}
	}
	h.Add(key, value)
}

// Add appends a field without touching existing ones.
func (h *Header) Add(key, value string) {
	*h = append(*h, Field{Name: CanonicalHeaderKey(key), Value: value})
}

// Del removes all values for the given key.
func (h *Header) Del(key string) {
	h.delFrom(key, 0)
}

func (h *Header) delFrom(key string, start int) {
	out := (*h)[:start]
	for _, f := range (*h)[start:] {
		if !strings.EqualFold(f.Name, key) {
			out = append(out, f)
		}
	}
	*h = out
}

// Clone returns a deep copy of the header.
func (h Header) Clone() Header {
	if h == nil {
		return nil
	}
	clone := make(Header, len(h))
	copy(clone, h)
	return clone
}

// WriteTo writes the headers to the given writer in HTTP format.
func (h Header) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, f := range h {
		cnt, err := io.WriteString(w, f.Name+": "+f.Value+crlf)
		n += int64(cnt)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// CanonicalHeaderKey returns the canonical format of the header key.
// The first character and any character following a hyphen are uppercased;
// the rest are lowercased. Examples: "content-type" -> "Content-Type".
func CanonicalHeaderKey(s string) string {
	if s == "" {
		return s
	}
	result := make([]byte, len(s))
	upperNext := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case upperNext && c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
		case !upperNext && c >= 'A' && c <= 'Z':
			c += 'a' - 'A'
		}
		result[i] = c
		upperNext = c == '-'
	}
	return string(result)
}

// ProtocolError represents an HTTP protocol error.
type ProtocolError struct {
	Message string
}

func (e *ProtocolError) Error() string {
	return e.Message
}
