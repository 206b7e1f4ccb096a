package vfs

import (
	"path/filepath"
	"strings"
)

// Join forms the on-disk path for name exactly as root + "/" + name.
// Nothing is cleaned, so "../x" walks out of root. Confined stores pair
// it with Within.
func Join(root, name string) string {
	return root + "/" + name
}

// Within reports whether name, resolved against any root, stays inside
// it. Absolute names and names that climb out with ".." are rejected.
// Symlinks under the root are not followed.
func Within(name string) bool {
	if name == "" || filepath.IsAbs(name) || strings.HasPrefix(name, "/") {
		return false
	}
	rel := filepath.Clean(filepath.FromSlash(name))
	if rel == "." {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
