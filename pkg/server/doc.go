// Package server owns the listening socket for httpd.
//
// Every accepted connection gets its own goroutine which reads once,
// decodes, routes, writes the response and closes. There is no keep-alive.
// Per-connection failures are logged and never stop the accept loop.
//
// Example usage:
//
//	srv := server.New(server.Config{
//		Addr:    "127.0.0.1:4221",
//		Handler: router.New(router.Config{FS: diskfs.New(dir, diskfs.Options{})}),
//	})
//	go srv.ListenAndServe()
//	srv.Shutdown(ctx)
package server
