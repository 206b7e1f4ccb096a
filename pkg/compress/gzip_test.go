package compress

import (
	"bytes"
	"compress/gzip"
	"io"
	"strings"
	"testing"
)

func gunzip(t *testing.T, data []byte) []byte {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("gzip.NewReader: %v", err)
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("read gzip stream: %v", err)
	}
	return out
}

func TestGzipRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"abc",
		"héllo wörld",
		strings.Repeat("banana", 500),
	}
	for _, in := range inputs {
		out, err := Gzip([]byte(in))
		if err != nil {
			t.Fatalf("Gzip(%q) error: %v", in, err)
		}
		if len(out) < 18 || out[0] != 0x1f || out[1] != 0x8b {
			t.Fatalf("Gzip(%q) did not produce a gzip header: % x", in, out)
		}
		if got := string(gunzip(t, out)); got != in {
			t.Errorf("round trip = %q, want %q", got, in)
		}
	}
}

func TestAcceptsGzip(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"gzip", true},
		{"GZIP", true},
		{"deflate, gzip", true},
		{"invalid-encoding-1, gzip, invalid-encoding-2", true},
		{"  gzip  ", true},
		{"gzip;q=0.5", true},
		{"gzip; q=0", false},
		{"br, gzip;q=0.0", false},
		{"", false},
		{"deflate", false},
		{"gzipx", false},
		{"x-gzip", false},
		{"invalid-encoding-1, invalid-encoding-2", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := AcceptsGzip(tt.value); got != tt.want {
				t.Errorf("AcceptsGzip(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
