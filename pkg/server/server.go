package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"sync"
	"time"

	"httpd/pkg/http"
	"httpd/pkg/router"
)

// DefaultAddr is where the server listens when Config.Addr is empty.
const DefaultAddr = "127.0.0.1:4221"

const maxAcceptDelay = time.Second

// Config holds server configuration.
type Config struct {
	Addr string

	// Handler answers every decoded request. Nil means a router with
	// default settings.
	Handler router.Handler

	// ReadBufferSize caps the single read done per connection.
	ReadBufferSize int

	// ReadTimeout bounds that read. Zero waits forever.
	ReadTimeout time.Duration

	Logger *log.Logger
}

// Server accepts connections and answers exactly one request on each.
type Server struct {
	addr        string
	handler     router.Handler
	bufSize     int
	readTimeout time.Duration
	logger      *log.Logger

	mu     sync.Mutex
	ln     net.Listener
	conns  map[net.Conn]struct{}
	closed bool
	wg     sync.WaitGroup
}

// New creates a new server with the given configuration.
func New(cfg Config) *Server {
	s := &Server{
		addr:        cfg.Addr,
		handler:     cfg.Handler,
		bufSize:     cfg.ReadBufferSize,
		readTimeout: cfg.ReadTimeout,
		logger:      cfg.Logger,
		conns:       make(map[net.Conn]struct{}),
	}
	if s.addr == "" {
		s.addr = DefaultAddr
	}
	if s.bufSize <= 0 {
		s.bufSize = http.DefaultReadBufferSize
	}
	if s.logger == nil {
		s.logger = log.New(os.Stderr, "httpd: ", log.LstdFlags)
	}
	if s.handler == nil {
		s.handler = router.New(router.Config{Logger: s.logger})
	}
	return s
}

// Addr returns the listening address once serving, else the configured one.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.addr
}

// ListenAndServe binds the configured address and serves on it. A bind
// failure is returned as an *Error with Kind BindFailure.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return &Error{Kind: BindFailure, Err: err}
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until the server is shut down, handing
// each one to its own goroutine. Accept errors are logged and retried.
func (s *Server) Serve(ln net.Listener) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		ln.Close()
		return ErrServerClosed
	}
	if s.ln != nil {
		s.mu.Unlock()
		return fmt.Errorf("server already started")
	}
	s.ln = ln
	s.mu.Unlock()

	s.logger.Printf("listening on %s", ln.Addr())
	var delay time.Duration
	for {
		conn, err := ln.Accept()
		if err != nil {
			if s.isClosed() {
				return ErrServerClosed
			}
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			delay = backoff(delay)
			s.logger.Printf("%v; retrying in %v", &Error{Kind: AcceptFailure, Err: err}, delay)
			time.Sleep(delay)
			continue
		}
		delay = 0
		if !s.track(conn) {
			conn.Close()
			return ErrServerClosed
		}
		go s.handleConn(conn)
	}
}

func backoff(d time.Duration) time.Duration {
	if d == 0 {
		return 5 * time.Millisecond
	}
	if d *= 2; d > maxAcceptDelay {
		d = maxAcceptDelay
	}
	return d
}

// handleConn handles a single connection: read once, decode, route,
// write, close. Failures are logged and the connection is dropped.
func (s *Server) handleConn(conn net.Conn) {
	defer s.untrack(conn)
	defer conn.Close()

	remote := conn.RemoteAddr().String()
	if s.readTimeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(s.readTimeout)); err != nil {
			s.logger.Print(&Error{Kind: ReadFailure, Remote: remote, Err: err})
			return
		}
	}
	req, err := http.ReadRequest(conn, s.bufSize)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return
		}
		kind := ReadFailure
		var perr *http.ProtocolError
		if errors.As(err, &perr) {
			kind = DecodeFailure
		}
		s.logger.Print(&Error{Kind: kind, Remote: remote, Err: err})
		return
	}

	resp := s.handler.Serve(req)
	if _, err := resp.WriteTo(conn); err != nil {
		s.logger.Print(&Error{Kind: WriteFailure, Remote: remote, Err: err})
	}
}

func (s *Server) track(conn net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.conns[conn] = struct{}{}
	s.wg.Add(1)
	return true
}

func (s *Server) untrack(conn net.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
	s.wg.Done()
}

func (s *Server) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// closeListener marks the server closed and stops the accept loop.
func (s *Server) closeListener() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.ln == nil {
		return nil
	}
	return s.ln.Close()
}

// Shutdown stops accepting and waits for in-flight connections to finish
// or for ctx to be done, whichever comes first.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.closeListener()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting and drops every open connection immediately.
func (s *Server) Close() error {
	err := s.closeListener()

	s.mu.Lock()
	for conn := range s.conns {
		conn.Close()
	}
	s.mu.Unlock()
	return err
}
