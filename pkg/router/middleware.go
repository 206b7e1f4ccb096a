package router

import (
	"log"
	"time"

	"httpd/pkg/http"
)

// Handler produces the response for a decoded request.
type Handler interface {
	Serve(*http.Request) *http.Response
}

// HandlerFunc is an adapter that allows using a function as a Handler.
type HandlerFunc func(*http.Request) *http.Response

// Serve calls f(req).
func (f HandlerFunc) Serve(req *http.Request) *http.Response {
	return f(req)
}

// Middleware is a function that wraps a Handler to add additional
// processing before or after the handler is called.
type Middleware func(Handler) Handler

// LoggingMiddleware returns a middleware that logs requests and responses.
func LoggingMiddleware(logger *log.Logger) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(req *http.Request) *http.Response {
			start := time.Now()
			resp := next.Serve(req)
			logger.Printf("%s %s %d %d %s", req.Method, req.Target, resp.StatusCode, len(resp.Body), time.Since(start))
			return resp
		})
	}
}

// RecoveryMiddleware returns a middleware that recovers from panics and
// answers 500 instead of losing the connection.
func RecoveryMiddleware(logger *log.Logger) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(req *http.Request) (resp *http.Response) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Printf("panic recovered: %s %s: %v", req.Method, req.Target, rec)
					resp = InternalError()
				}
			}()
			return next.Serve(req)
		})
	}
}

// Chain chains multiple middlewares together.
// The middlewares are applied in the order they are passed.
func Chain(middlewares ...Middleware) Middleware {
	return func(next Handler) Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}
		return next
	}
}
