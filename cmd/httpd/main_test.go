package main

import (
	"context"
	"io"
	"log"
	"net"
	"testing"
	"time"

	"httpd/pkg/http"
	"httpd/pkg/vfs/diskfs"
	"httpd/pkg/vfs/memfs"
	"httpd/pkg/vfs/overlayfs"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		env     map[string]string
		wantDir string
		wantAdr string
		wantErr bool
	}{
		{"no args", nil, nil, "", "", false},
		{"directory flag", []string{"--directory", "/tmp/x"}, nil, "/tmp/x", "", false},
		{"single dash", []string{"-directory=/tmp/y"}, nil, "/tmp/y", "", false},
		{"positional", []string{"/tmp/z"}, nil, "/tmp/z", "", false},
		{"env fills unset", nil, map[string]string{"HTTPD_DIRECTORY": "/srv", "HTTPD_ADDR": ":9000"}, "/srv", ":9000", false},
		{"flag beats env", []string{"-addr", ":1"}, map[string]string{"HTTPD_ADDR": ":9000"}, "", ":1", false},
		{"negative buffer", []string{"-buffer", "-1"}, nil, "", "", true},
		{"unknown flag", []string{"-bogus"}, nil, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseOptions(tt.args, env(tt.env), io.Discard)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseOptions() error = %v", err)
			}
			if opts.directory != tt.wantDir {
				t.Errorf("directory = %q, want %q", opts.directory, tt.wantDir)
			}
			if opts.addr != tt.wantAdr {
				t.Errorf("addr = %q, want %q", opts.addr, tt.wantAdr)
			}
		})
	}
}

func TestOptionsFileSystem(t *testing.T) {
	opts := &options{memory: true}
	if _, ok := opts.fileSystem().(*memfs.FS); !ok {
		t.Errorf("expected memfs, got %T", opts.fileSystem())
	}
	opts = &options{directory: t.TempDir(), confine: true}
	if _, ok := opts.fileSystem().(*diskfs.FS); !ok {
		t.Errorf("expected diskfs, got %T", opts.fileSystem())
	}
	opts = &options{directory: t.TempDir(), memory: true}
	if _, ok := opts.fileSystem().(*overlayfs.FS); !ok {
		t.Errorf("expected overlayfs, got %T", opts.fileSystem())
	}
}

func TestNewServer(t *testing.T) {
	opts := &options{directory: t.TempDir(), quiet: true}
	srv := newServer(opts, log.New(io.Discard, "", 0))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	go srv.Serve(ln)
	defer srv.Close()

	client := &http.Client{Addr: ln.Addr().String(), Timeout: 5 * time.Second}
	ctx := context.Background()
	if resp, err := client.Post(ctx, "/files/a", []byte("data")); err != nil || resp.StatusCode != http.StatusCreated {
		t.Fatalf("POST failed: %v", err)
	}
	resp, err := client.Get(ctx, "/files/a")
	if err != nil {
		t.Fatal(err)
	}
	if string(resp.Body) != "data" {
		t.Errorf("body = %q, want %q", resp.Body, "data")
	}
}
