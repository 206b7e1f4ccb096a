package vfs

import (
	"errors"
	"io/fs"
	"os"
)

// FileSystem is the storage the /files routes read from and write to.
// Names are the raw path segment taken from the request target; how they
// map onto storage is up to the implementation.
type FileSystem interface {
	// ReadFile returns the full contents of name. A missing file yields an
	// error for which errors.Is(err, ErrNotExist) holds.
	ReadFile(name string) ([]byte, error)

	// WriteFile creates or truncates name and writes data to it. Concurrent
	// writers to the same name are not ordered.
	WriteFile(name string, data []byte, perm os.FileMode) error
}

var (
	// ErrNotExist is reported for names that have no file behind them.
	ErrNotExist = fs.ErrNotExist

	// ErrOutsideRoot is reported by confined stores for names that would
	// resolve outside their root directory.
	ErrOutsideRoot = errors.New("vfs: path escapes root")
)

// DefaultPerm is the mode used for files created through the /files routes.
const DefaultPerm os.FileMode = 0644
