// Package vfs defines the file store behind the /files routes, with a
// disk-backed implementation (DiskFS) and an in-memory one (MemFS).
//
// The interface is deliberately two calls wide: read a whole file, write a
// whole file. There is no locking across requests; two POSTs to the same
// name race and the last writer wins.
//
// # Usage
//
//	store := diskfs.New("/tmp/data", diskfs.Options{})
//	if err := store.WriteFile("report.txt", []byte("hello"), vfs.DefaultPerm); err != nil {
//		log.Fatal(err)
//	}
//	data, err := store.ReadFile("report.txt")
//	if errors.Is(err, vfs.ErrNotExist) {
//		// 404
//	}
package vfs
