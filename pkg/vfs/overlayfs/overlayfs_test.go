package overlayfs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	vfs "httpd/pkg/vfs"
	"httpd/pkg/vfs/diskfs"
	"httpd/pkg/vfs/memfs"
)

var _ vfs.FileSystem = (*FS)(nil)

func setupOverlay(t *testing.T) (*FS, *memfs.FS, string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "lower.txt"), []byte("from disk"), 0644); err != nil {
		t.Fatal(err)
	}
	upper := memfs.New()
	return New(upper, diskfs.New(dir, diskfs.Options{})), upper, dir
}

func TestReadFallsThrough(t *testing.T) {
	fs, _, _ := setupOverlay(t)

	data, err := fs.ReadFile("lower.txt")
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if string(data) != "from disk" {
		t.Errorf("read %q, expected %q", data, "from disk")
	}
}

func TestUpperShadowsLower(t *testing.T) {
	fs, upper, dir := setupOverlay(t)

	if err := fs.WriteFile("lower.txt", []byte("from memory"), vfs.DefaultPerm); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	data, err := fs.ReadFile("lower.txt")
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if string(data) != "from memory" {
		t.Errorf("read %q, expected %q", data, "from memory")
	}

	onDisk, err := os.ReadFile(filepath.Join(dir, "lower.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(onDisk) != "from disk" {
		t.Errorf("lower layer modified: %q", onDisk)
	}
	if names := upper.Names(); len(names) != 1 || names[0] != "lower.txt" {
		t.Errorf("upper holds %v, expected [lower.txt]", names)
	}
}

func TestReadMissing(t *testing.T) {
	fs, _, _ := setupOverlay(t)

	_, err := fs.ReadFile("missing.txt")
	if !errors.Is(err, vfs.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

type failingFS struct{ err error }

func (f failingFS) ReadFile(string) ([]byte, error) { return nil, f.err }
func (f failingFS) WriteFile(string, []byte, os.FileMode) error { return f.err }

func TestUpperErrorNotMasked(t *testing.T) {
	boom := errors.New("boom")
	fs := New(failingFS{boom}, memfs.New())

	if _, err := fs.ReadFile("x"); !errors.Is(err, boom) {
		t.Errorf("expected upper error, got %v", err)
	}
}
