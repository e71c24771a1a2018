// Package response provides constructors for handler.Response values: plain
// text, HTML, raw bytes, html/template pages, redirects and errors.
//
// Every constructor returns a deferred render function, so handlers decide
// what to send and the router decides when:
//
//	func show(ctx *cms.Context) handler.Response {
//		doc, err := store.Read(ctx, name)
//		if err != nil {
//			return response.Error(err)
//		}
//		return response.Bytes(doc, "text/plain; charset=utf-8")
//	}
//
// Template responses buffer the whole page before writing the status line,
// so a template error surfaces through the error handler instead of a
// half-written page.
//
// Errors returned from a Response reach the router's error handler.
// AsHTTPError maps arbitrary errors onto the predefined HTTPError values
// (ErrNotFound, ErrInternalServerError, ...) using an optional
// StatusCode() int method on the error.
package response
