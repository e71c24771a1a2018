// Package router provides a typed HTTP router on top of net/http.ServeMux
// pattern matching, with middleware composition, route groups, panic
// recovery and a pluggable error handler.
//
// Patterns follow ServeMux syntax, so a literal segment always wins over a
// wildcard in the same position ("/new" beats "/{filename}"):
//
//	r := router.New[*app.Context](
//		router.WithContextFactory(app.NewContext),
//		router.WithErrorHandler(app.ErrorHandler),
//	)
//	r.Use(middleware.RequestID[*app.Context]())
//
//	r.Get("/{$}", listDocuments)
//	r.Get("/{filename}", showDocument)
//	r.Group(func(r router.Router[*app.Context]) {
//		r.Use(requireSignIn)
//		r.Get("/new", newDocumentForm)
//		r.Post("/{filename}/edit", updateDocument)
//	})
//
// Path wildcards are exposed through Context.Param. Requests that match no
// pattern reach the error handler with ErrNotFound or ErrMethodNotAllowed
// (with an Allow header set). Panics are recovered and passed to the error
// handler as a *PanicError unless the response was already written.
package router
