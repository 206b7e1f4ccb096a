// Package diskfs provides the disk-backed file store for the /files routes.
// It wraps the standard library's os functions behind vfs.FileSystem.
package diskfs

import (
	"fmt"
	"os"
	"path/filepath"

	vfs "httpd/pkg/vfs"
)

// Options tunes how names are mapped onto the root directory.
type Options struct {
	// Confine rejects names that would resolve outside the root with
	// vfs.ErrOutsideRoot. Off by default: names are joined verbatim.
	Confine bool
}

// FS represents a disk-based filesystem.
type FS struct {
	root    string
	confine bool
}

// New creates a new disk-based filesystem rooted at the given directory.
// The root is used as given; an empty root makes every name absolute.
func New(root string, opts Options) *FS {
	return &FS{root: root, confine: opts.Confine}
}

// Root returns the directory the store was created with.
func (fs *FS) Root() string {
	return fs.root
}

// ReadFile implements vfs.FileSystem.ReadFile.
func (fs *FS) ReadFile(name string) ([]byte, error) {
	fullPath, err := fs.fullPath(name)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(fullPath)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("diskfs: %s is a directory", name)
	}
	return os.ReadFile(fullPath)
}

// WriteFile implements vfs.FileSystem.WriteFile.
func (fs *FS) WriteFile(name string, data []byte, perm os.FileMode) error {
	fullPath, err := fs.fullPath(name)
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, data, perm)
}

// fullPath converts a request name to the path handed to the os package.
func (fs *FS) fullPath(name string) (string, error) {
	if !fs.confine {
		return vfs.Join(fs.root, name), nil
	}
	if !vfs.Within(name) {
		return "", fmt.Errorf("diskfs: %q: %w", name, vfs.ErrOutsideRoot)
	}
	return filepath.Join(fs.root, filepath.FromSlash(name)), nil
}
