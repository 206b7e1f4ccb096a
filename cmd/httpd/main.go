// httpd is a small HTTP/1.1 server answering one request per connection.
// It echoes strings, reports the caller's User-Agent and stores files
// under a directory.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"httpd/pkg/router"
	"httpd/pkg/server"
	"httpd/pkg/vfs"
	"httpd/pkg/vfs/diskfs"
	"httpd/pkg/vfs/memfs"
	"httpd/pkg/vfs/overlayfs"
)

const shutdownTimeout = 10 * time.Second

type options struct {
	addr        string
	directory   string
	bufferSize  int
	readTimeout time.Duration
	confine     bool
	memory      bool
	quiet       bool
}

// parseOptions reads flags from args, then lets HTTPD_ADDR and
// HTTPD_DIRECTORY fill in whatever the flags left unset.
func parseOptions(args []string, getenv func(string) string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("httpd", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.StringVar(&opts.addr, "addr", "", "listen address (default "+server.DefaultAddr+")")
	fs.StringVar(&opts.directory, "directory", "", "directory backing /files/")
	fs.IntVar(&opts.bufferSize, "buffer", 0, "bytes read per request")
	fs.DurationVar(&opts.readTimeout, "read-timeout", 0, "drop clients that send nothing for this long")
	fs.BoolVar(&opts.confine, "confine", false, "reject file names that escape the directory")
	fs.BoolVar(&opts.memory, "memory", false, "keep written files in memory; with -directory, reads fall through to disk")
	fs.BoolVar(&opts.quiet, "quiet", false, "disable per-request logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// A bare trailing argument is taken as the directory.
	if opts.directory == "" && fs.NArg() > 0 {
		opts.directory = fs.Arg(0)
	}
	if opts.addr == "" {
		opts.addr = getenv("HTTPD_ADDR")
	}
	if opts.directory == "" {
		opts.directory = getenv("HTTPD_DIRECTORY")
	}
	if opts.bufferSize < 0 {
		return nil, fmt.Errorf("buffer must not be negative: %d", opts.bufferSize)
	}
	return opts, nil
}

func (o *options) fileSystem() vfs.FileSystem {
	if !o.memory {
		return diskfs.New(o.directory, diskfs.Options{Confine: o.confine})
	}
	if o.directory == "" {
		return memfs.New()
	}
	return overlayfs.New(memfs.New(), diskfs.New(o.directory, diskfs.Options{Confine: o.confine}))
}

func newServer(opts *options, logger *log.Logger) *server.Server {
	middleware := []router.Middleware{router.RecoveryMiddleware(logger)}
	if !opts.quiet {
		middleware = append(middleware, router.LoggingMiddleware(logger))
	}
	handler := router.New(router.Config{
		FS:         opts.fileSystem(),
		Logger:     logger,
		Middleware: middleware,
	})
	return server.New(server.Config{
		Addr:           opts.addr,
		Handler:        handler,
		ReadBufferSize: opts.bufferSize,
		ReadTimeout:    opts.readTimeout,
		Logger:         logger,
	})
}

func main() {
	opts, err := parseOptions(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	logger := log.New(os.Stderr, "httpd: ", log.LstdFlags)
	srv := newServer(opts, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, server.ErrServerClosed) {
			logger.Fatalf("Server error: %v", err)
		}
		return
	case <-quit:
	}

	logger.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("Server forced to shutdown: %v", err)
		srv.Close()
	}

	logger.Println("Server exited")
}
