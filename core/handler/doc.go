// Package handler defines the typed request-processing contract shared by the
// router, middleware and application packages.
//
// A handler receives an application-defined context and returns a Response,
// a deferred render function. Deferring the write lets middleware observe the
// handler's decision (for example to persist the session) before any byte
// reaches the client:
//
//	func show(ctx *cms.Context) handler.Response {
//		name := ctx.Param("filename")
//		return response.String("viewing " + name)
//	}
//
// Middleware composes around HandlerFunc values:
//
//	h := handler.Chain(show, logging, session)
//
// The first middleware passed to Chain is the outermost one.
package handler
