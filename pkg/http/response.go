package http

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"
)

// Response represents an HTTP response.
type Response struct {
	StatusCode int
	Reason     string
	Proto      string
	Header     Header
	Body       []byte
}

// NewResponse creates a new HTTP/1.1 response with the standard reason phrase.
func NewResponse(statusCode int, body []byte) *Response {
	return &Response{
		StatusCode: statusCode,
		Reason:     StatusText(statusCode),
		Proto:      ProtocolHTTP11,
		Body:       body,
	}
}

// Text returns a text/plain response.
func Text(statusCode int, text string) *Response {
	resp := NewResponse(statusCode, []byte(text))
	resp.Header.Set(HeaderContentType, ContentTypeText)
	return resp
}

// Binary returns an application/octet-stream response.
func Binary(statusCode int, data []byte) *Response {
	resp := NewResponse(statusCode, data)
	resp.Header.Set(HeaderContentType, ContentTypeBinary)
	return resp
}

// Status returns the "<code> <reason>" part of the status line.
func (r *Response) Status() string {
	reason := r.Reason
	if reason == "" {
		reason = StatusText(r.StatusCode)
	}
	return strconv.Itoa(r.StatusCode) + " " + reason
}

// WriteTo writes the response to the given writer in HTTP format.
// Content-Length is recomputed from Body.
func (r *Response) WriteTo(w io.Writer) (int64, error) {
	return bytes.NewReader(r.Bytes()).WriteTo(w)
}

// Bytes returns the full wire form of the response.
func (r *Response) Bytes() []byte {
	var buf bytes.Buffer
	proto := r.Proto
	if proto == "" {
		proto = ProtocolHTTP11
	}
	buf.WriteString(proto + " " + r.Status() + crlf)
	header := r.Header.Clone()
	header.Set(HeaderContentLength, strconv.Itoa(len(r.Body)))
	header.WriteTo(&buf)
	buf.WriteString(crlf)
	buf.Write(r.Body)
	return buf.Bytes()
}

// StatusText returns the standard text for the given status code.
func StatusText(code int) string {
	switch code {
	case StatusOK:
		return "OK"
	case StatusCreated:
		return "Created"
	case StatusBadRequest:
		return "Bad Request"
	case StatusNotFound:
		return "Not Found"
	case StatusMethodNotAllowed:
		return "Method Not Allowed"
	case StatusInternalServerError:
		return "Internal Server Error"
	default:
		return "Unknown"
	}
}

// ReadResponse reads an HTTP response from the reader. The body is read
// up to Content-Length, or until EOF when the header is absent.
func ReadResponse(r *bufio.Reader) (*Response, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return nil, err
	}
	line = strings.TrimSuffix(line, crlf)
	if line == "" {
		return nil, io.EOF
	}
	proto, statusCode, message, err := ParseStatusLine(line)
	if err != nil {
		return nil, err
	}
	resp := &Response{
		StatusCode: statusCode,
		Reason:     message,
		Proto:      proto,
	}
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return nil, err
		}
		line = strings.TrimSuffix(line, crlf)
		if line == "" {
			break
		}
		name, value, ok := ParseHeaderLine(line)
		if !ok {
			return nil, &ProtocolError{"malformed header: " + line}
		}
		resp.Header.Add(name, value)
	}
	if n := resp.ContentLength(); n >= 0 {
		// Grow with the data actually received, not the declared length.
		resp.Body, err = io.ReadAll(io.LimitReader(r, n))
		if err != nil {
			return nil, err
		}
		if int64(len(resp.Body)) != n {
			return nil, io.ErrUnexpectedEOF
		}
		return resp, nil
	}
	resp.Body, err = io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ParseStatusLine parses an HTTP status line.
func ParseStatusLine(line string) (string, int, string, error) {
	parts := strings.SplitN(line, " ", 3)
	if len(parts) < 2 {
		return "", 0, "", &ProtocolError{"malformed status line: " + line}
	}
	proto := parts[0]
	statusCode, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, "", &ProtocolError{"invalid status code: " + parts[1]}
	}
	message := ""
	if len(parts) > 2 {
		message = parts[2]
	}
	return proto, statusCode, message, nil
}

// ContentLength returns the Content-Length header value, or -1 if not set.
func (r *Response) ContentLength() int64 {
	cl := r.Header.Get(HeaderContentLength)
	if cl == "" {
		return -1
	}
	n, err := strconv.ParseInt(cl, 10, 64)
	if err != nil || n < 0 {
		return -1
	}
	return n
}
