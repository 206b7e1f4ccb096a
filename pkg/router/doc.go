// Package router maps decoded requests onto httpd's fixed handlers.
//
// Routing is a pure function of method and target (see Decide):
//   - Exact match: /
//   - Prefix with argument: /echo/<value>, /files/<name>
//   - Prefix without argument: /user-agent
//
// Example usage:
//
//	r := router.New(router.Config{
//		FS:         diskfs.New("/tmp/data", diskfs.Options{}),
//		Middleware: []router.Middleware{router.RecoveryMiddleware(logger)},
//	})
//	resp := r.Serve(req)
package router
