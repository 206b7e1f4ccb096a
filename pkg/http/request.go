package http

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Request represents a decoded HTTP request.
type Request struct {
	Method string
	Target string
	Proto  string
	Header Header
	Body   []byte
}

// NewRequest creates a new HTTP/1.1 request for target.
func NewRequest(method, target string, body []byte) *Request {
	return &Request{
		Method: method,
		Target: target,
		Proto:  ProtocolHTTP11,
		Body:   body,
	}
}

// WriteTo writes the request to the given writer in HTTP format.
// A Content-Length header is added when the request carries a body.
func (r *Request) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	proto := r.Proto
	if proto == "" {
		proto = ProtocolHTTP11
	}
	buf.WriteString(r.Method + " " + r.Target + " " + proto + crlf)
	header := r.Header.Clone()
	if len(r.Body) > 0 {
		header.Set(HeaderContentLength, strconv.Itoa(len(r.Body)))
	}
	header.WriteTo(&buf)
	buf.WriteString(crlf)
	buf.Write(r.Body)
	return buf.WriteTo(w)
}

// UserAgent returns the User-Agent header value.
func (r *Request) UserAgent() string {
	return r.Header.Get(HeaderUserAgent)
}

// ParseRequestLine splits a request line on whitespace.
// The protocol token is optional. A line with fewer than two tokens yields
// empty method and target; the caller decides what that means.
func ParseRequestLine(line string) (method, target, proto string) {
	parts := strings.Fields(line)
	if len(parts) < 2 {
		return "", "", ""
	}
	method, target = parts[0], parts[1]
	if len(parts) > 2 {
		proto = parts[2]
	}
	return method, target, proto
}

// ParseHeaderLine splits a header line on the first ": ".
// It falls back to a bare ':' so "Host:example" still decodes.
func ParseHeaderLine(line string) (string, string, bool) {
	if idx := strings.Index(line, ": "); idx > 0 {
		return line[:idx], line[idx+2:], true
	}
	if idx := strings.IndexByte(line, ':'); idx > 0 {
		return line[:idx], strings.TrimSpace(line[idx+1:]), true
	}
	return "", "", false
}

// DecodeRequest turns the bytes of one socket read into a Request.
// The body is whatever follows the first blank line and is not checked
// against Content-Length.
func DecodeRequest(buf []byte) (*Request, error) {
	head, body, found := bytes.Cut(buf, []byte(crlf+crlf))
	if !utf8.Valid(head) {
		return nil, &ProtocolError{"request head is not valid UTF-8"}
	}
	lines := strings.Split(string(head), crlf)
	req := &Request{}
	req.Method, req.Target, req.Proto = ParseRequestLine(lines[0])
	for _, line := range lines[1:] {
		if line == "" {
			break
		}
		name, value, ok := ParseHeaderLine(line)
		if !ok {
			continue
		}
		req.Header.Add(name, value)
	}
	if found {
		req.Body = body
	}
	return req, nil
}

// ReadRequest performs exactly one Read of at most size bytes and decodes
// it. Requests larger than size are truncated rather than rejected.
func ReadRequest(r io.Reader, size int) (*Request, error) {
	if size <= 0 {
		size = DefaultReadBufferSize
	}
	buf := make([]byte, size)
	n, err := r.Read(buf)
	if n == 0 && err != nil {
		return nil, err
	}
	buf = buf[:n]
	if n == size && !bytes.Contains(buf, []byte(crlf+crlf)) {
		buf = trimPartialRune(buf)
	}
	return DecodeRequest(buf)
}

// trimPartialRune drops a multi-byte character cut off at the end of b.
func trimPartialRune(b []byte) []byte {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if utf8.RuneStart(b[i]) {
			if !utf8.FullRune(b[i:]) {
				return b[:i]
			}
			return b
		}
	}
	return b
}
