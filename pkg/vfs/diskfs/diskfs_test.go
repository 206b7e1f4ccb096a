package diskfs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	vfs "httpd/pkg/vfs"
)

func TestNew(t *testing.T) {
	tmpDir := t.TempDir()
	fs := New(tmpDir, Options{})

	if fs == nil {
		t.Fatal("New() returned nil")
	}
	if fs.Root() != tmpDir {
		t.Errorf("root is %q, expected %q", fs.Root(), tmpDir)
	}
}

func TestReadFile(t *testing.T) {
	tmpDir := t.TempDir()
	fs := New(tmpDir, Options{})

	if err := os.WriteFile(filepath.Join(tmpDir, "test.txt"), []byte("test content"), 0644); err != nil {
		t.Fatal(err)
	}

	data, err := fs.ReadFile("test.txt")
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if string(data) != "test content" {
		t.Errorf("read %q, expected %q", string(data), "test content")
	}
}

func TestReadFileNotExist(t *testing.T) {
	fs := New(t.TempDir(), Options{})

	_, err := fs.ReadFile("missing.txt")
	if !errors.Is(err, vfs.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestReadFileDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.Mkdir(filepath.Join(tmpDir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	fs := New(tmpDir, Options{})

	_, err := fs.ReadFile("sub")
	if err == nil {
		t.Fatal("expected error reading a directory")
	}
	if errors.Is(err, vfs.ErrNotExist) {
		t.Errorf("a directory is not a missing file: %v", err)
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	fs := New(tmpDir, Options{})

	if err := fs.WriteFile("x", []byte("first write, longer"), vfs.DefaultPerm); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if err := fs.WriteFile("x", []byte("second"), vfs.DefaultPerm); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(tmpDir, "x"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("file holds %q, want %q", data, "second")
	}
}

func TestWriteFileMissingRoot(t *testing.T) {
	fs := New(filepath.Join(t.TempDir(), "does-not-exist"), Options{})

	if err := fs.WriteFile("x", []byte("data"), vfs.DefaultPerm); err == nil {
		t.Error("expected error writing under a missing root")
	}
}

// TestTraversalUnconfined documents that names are joined verbatim by
// default, so "../" reaches the parent of the root.
func TestTraversalUnconfined(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "root")
	if err := os.Mkdir(root, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(parent, "secret"), []byte("s3cr3t"), 0644); err != nil {
		t.Fatal(err)
	}

	data, err := New(root, Options{}).ReadFile("../secret")
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if string(data) != "s3cr3t" {
		t.Errorf("read %q", data)
	}
}

func TestTraversalConfined(t *testing.T) {
	root := t.TempDir()
	fs := New(root, Options{Confine: true})

	for _, name := range []string{"../secret", "a/../../secret", "/etc/passwd", "..", ""} {
		if _, err := fs.ReadFile(name); !errors.Is(err, vfs.ErrOutsideRoot) {
			t.Errorf("ReadFile(%q) error = %v, want ErrOutsideRoot", name, err)
		}
		if err := fs.WriteFile(name, nil, vfs.DefaultPerm); !errors.Is(err, vfs.ErrOutsideRoot) {
			t.Errorf("WriteFile(%q) error = %v, want ErrOutsideRoot", name, err)
		}
	}

	if err := fs.WriteFile("a/../inside.txt", []byte("ok"), vfs.DefaultPerm); err != nil {
		t.Errorf("WriteFile() of a name that stays inside failed: %v", err)
	}
}
