package router

import (
	"log"
	"strings"

	"httpd/pkg/http"
	"httpd/pkg/vfs"
	"httpd/pkg/vfs/diskfs"
)

// Path prefixes recognised by Decide.
const (
	PathRoot      = "/"
	PrefixEcho    = "/echo/"
	PrefixUA      = "/user-agent"
	PrefixFiles   = "/files/"
	AllowedFileOp = http.MethodGet + ", " + http.MethodPost
)

// Kind identifies which behaviour a request was routed to.
type Kind int

const (
	// KindNotFound is any target no route claims.
	KindNotFound Kind = iota
	// KindRoot is exactly "/".
	KindRoot
	// KindEcho is a target under /echo/.
	KindEcho
	// KindUserAgent is a target starting with /user-agent.
	KindUserAgent
	// KindFileGet is a GET under /files/.
	KindFileGet
	// KindFilePost is a POST under /files/.
	KindFilePost
	// KindMethodNotAllowed is any other method under /files/.
	KindMethodNotAllowed
	// KindBadRequest is a non-empty target that does not start with "/".
	KindBadRequest
)

var kindNames = [...]string{
	KindNotFound:         "NotFound",
	KindRoot:             "Root",
	KindEcho:             "Echo",
	KindUserAgent:        "UserAgent",
	KindFileGet:          "FileGet",
	KindFilePost:         "FilePost",
	KindMethodNotAllowed: "MethodNotAllowed",
	KindBadRequest:       "BadRequest",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Decision is the outcome of routing. Arg carries the echo content for
// KindEcho and the file name for the file kinds.
type Decision struct {
	Kind Kind
	Arg  string
}

// Decide maps a method and target to a Decision using prefix matching.
// It looks at nothing else, so it never fails: an empty target (what the
// decoder produces for a short request line) is simply not found.
func Decide(method, target string) Decision {
	switch {
	case target == PathRoot:
		return Decision{Kind: KindRoot}
	case strings.HasPrefix(target, PrefixEcho):
		return Decision{Kind: KindEcho, Arg: target[len(PrefixEcho):]}
	case strings.HasPrefix(target, PrefixUA):
		return Decision{Kind: KindUserAgent}
	case strings.HasPrefix(target, PrefixFiles):
		name := target[len(PrefixFiles):]
		if name == "" {
			return Decision{Kind: KindNotFound}
		}
		switch method {
		case http.MethodGet:
			return Decision{Kind: KindFileGet, Arg: name}
		case http.MethodPost:
			return Decision{Kind: KindFilePost, Arg: name}
		default:
			return Decision{Kind: KindMethodNotAllowed, Arg: name}
		}
	case target != "" && !strings.HasPrefix(target, "/"):
		return Decision{Kind: KindBadRequest}
	default:
		return Decision{Kind: KindNotFound}
	}
}

// Config holds router configuration.
type Config struct {
	// FS backs the /files routes. Nil means a disk store rooted at "".
	FS vfs.FileSystem

	// Logger receives handler failures. Nil means log.Default().
	Logger *log.Logger

	// Middleware wraps dispatch, outermost first.
	Middleware []Middleware
}

// Router dispatches decoded requests to the fixed set of handlers.
// It holds no mutable state and is safe for concurrent use.
type Router struct {
	fs      vfs.FileSystem
	logger  *log.Logger
	handler Handler
}

// New creates a new Router instance.
func New(cfg Config) *Router {
	r := &Router{
		fs:     cfg.FS,
		logger: cfg.Logger,
	}
	if r.fs == nil {
		r.fs = diskfs.New("", diskfs.Options{})
	}
	if r.logger == nil {
		r.logger = log.Default()
	}
	r.handler = Chain(cfg.Middleware...)(HandlerFunc(r.dispatch))
	return r
}

// Serve implements Handler. It always returns a response.
func (r *Router) Serve(req *http.Request) *http.Response {
	return r.handler.Serve(req)
}

func (r *Router) dispatch(req *http.Request) *http.Response {
	d := Decide(req.Method, req.Target)
	switch d.Kind {
	case KindRoot:
		return handleRoot()
	case KindEcho:
		return r.handleEcho(req, d.Arg)
	case KindUserAgent:
		return handleUserAgent(req)
	case KindFileGet:
		return r.handleFileGet(d.Arg)
	case KindFilePost:
		return r.handleFilePost(d.Arg, req.Body)
	case KindMethodNotAllowed:
		return MethodNotAllowed()
	case KindBadRequest:
		return http.NewResponse(http.StatusBadRequest, nil)
	default:
		return NotFound()
	}
}
