// Package memfs provides an in-memory file store.
// It is useful for ephemeral storage and for testing handlers without a disk.
package memfs

import (
	"fmt"
	"os"
	"sort"
	"sync"

	vfs "httpd/pkg/vfs"
)

type memFile struct {
	data []byte
	mode os.FileMode
}

// FS represents an in-memory filesystem. Names are used as flat keys.
type FS struct {
	mu    sync.RWMutex
	files map[string]*memFile
}

// New creates an empty in-memory filesystem.
func New() *FS {
	return &FS{files: make(map[string]*memFile)}
}

// ReadFile implements vfs.FileSystem.ReadFile. The returned slice is a copy.
func (fs *FS) ReadFile(name string) ([]byte, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	f, ok := fs.files[name]
	if !ok {
		return nil, fmt.Errorf("memfs: %s: %w", name, vfs.ErrNotExist)
	}
	data := make([]byte, len(f.data))
	copy(data, f.data)
	return data, nil
}

// WriteFile implements vfs.FileSystem.WriteFile.
func (fs *FS) WriteFile(name string, data []byte, perm os.FileMode) error {
	buf := make([]byte, len(data))
	copy(buf, data)

	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.files[name] = &memFile{data: buf, mode: perm}
	return nil
}

// Names returns the stored names in sorted order.
func (fs *FS) Names() []string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	names := make([]string, 0, len(fs.files))
	for name := range fs.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
