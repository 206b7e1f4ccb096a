// Package overlayfs provides a layered filesystem implementation.
// It combines a read-only lower filesystem with a read-write upper
// filesystem: reads fall through to lower, writes only ever reach upper.
package overlayfs

import (
	"errors"
	"os"

	vfs "httpd/pkg/vfs"
)

// FS represents a layered filesystem with lower (read-only) and upper (read-write) layers.
type FS struct {
	upper vfs.FileSystem
	lower vfs.FileSystem
}

// New creates a new overlay filesystem with the given upper and lower layers.
func New(upper, lower vfs.FileSystem) *FS {
	return &FS{
		upper: upper,
		lower: lower,
	}
}

// ReadFile implements vfs.FileSystem.ReadFile. A name present in the upper
// layer shadows the lower one.
func (fs *FS) ReadFile(name string) ([]byte, error) {
	data, err := fs.upper.ReadFile(name)
	if err == nil || !errors.Is(err, vfs.ErrNotExist) {
		return data, err
	}
	return fs.lower.ReadFile(name)
}

// WriteFile implements vfs.FileSystem.WriteFile. The lower layer is never
// modified.
func (fs *FS) WriteFile(name string, data []byte, perm os.FileMode) error {
	return fs.upper.WriteFile(name, data, perm)
}
