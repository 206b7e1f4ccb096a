package router

import (
	"errors"
	"strings"

	"httpd/pkg/compress"
	"httpd/pkg/http"
	"httpd/pkg/vfs"
)

// Greeting is the body served at "/".
const Greeting = "Welcome to the HTTP server"

// NotFound returns a 404 Not Found response.
func NotFound() *http.Response {
	return http.NewResponse(http.StatusNotFound, nil)
}

// MethodNotAllowed returns a 405 response advertising the file methods.
func MethodNotAllowed() *http.Response {
	resp := http.NewResponse(http.StatusMethodNotAllowed, nil)
	resp.Header.Set(http.HeaderAllow, AllowedFileOp)
	return resp
}

// InternalError returns a 500 response.
func InternalError() *http.Response {
	return http.NewResponse(http.StatusInternalServerError, nil)
}

func handleRoot() *http.Response {
	return http.Text(http.StatusOK, Greeting)
}

func (r *Router) handleEcho(req *http.Request, value string) *http.Response {
	resp := http.Text(http.StatusOK, value)
	accept := strings.Join(req.Header.Values(http.HeaderAcceptEncoding), ",")
	if !compress.AcceptsGzip(accept) {
		return resp
	}
	body, err := compress.Gzip(resp.Body)
	if err != nil {
		r.logger.Printf("echo: gzip %d bytes: %v", len(resp.Body), err)
		return InternalError()
	}
	resp.Body = body
	resp.Header.Set(http.HeaderContentEncoding, http.EncodingGzip)
	return resp
}

func handleUserAgent(req *http.Request) *http.Response {
	ua, ok := req.Header.Lookup(http.HeaderUserAgent)
	if !ok {
		return http.NewResponse(http.StatusBadRequest, nil)
	}
	return http.Text(http.StatusOK, ua)
}

func (r *Router) handleFileGet(name string) *http.Response {
	data, err := r.fs.ReadFile(name)
	switch {
	case err == nil:
		return http.Binary(http.StatusOK, data)
	case errors.Is(err, vfs.ErrNotExist), errors.Is(err, vfs.ErrOutsideRoot):
		return NotFound()
	default:
		r.logger.Printf("files: read %q: %v", name, err)
		return InternalError()
	}
}

func (r *Router) handleFilePost(name string, body []byte) *http.Response {
	err := r.fs.WriteFile(name, body, vfs.DefaultPerm)
	switch {
	case err == nil:
		return http.NewResponse(http.StatusCreated, nil)
	case errors.Is(err, vfs.ErrOutsideRoot):
		return NotFound()
	default:
		r.logger.Printf("files: write %q: %v", name, err)
		return InternalError()
	}
}
