package router

import (
	"net/http"

	"github.com/dmitrymomot/doccms/core/handler"
)

// Router registers handlers on top of http.ServeMux. Patterns use ServeMux
// syntax ("/{name}", "/{path...}", "/{$}") without the method prefix.
type Router[C handler.Context] interface {
	http.Handler

	Get(pattern string, h handler.HandlerFunc[C])
	Post(pattern string, h handler.HandlerFunc[C])
	Put(pattern string, h handler.HandlerFunc[C])
	Patch(pattern string, h handler.HandlerFunc[C])
	Delete(pattern string, h handler.HandlerFunc[C])
	// Method registers h once per listed method. Names are case-insensitive.
	Method(pattern string, h handler.HandlerFunc[C], methods ...string)

	// Use appends middleware. It panics once a route has been registered.
	Use(mw ...handler.Middleware[C])
	// With returns an inline group whose routes also run mw.
	With(mw ...handler.Middleware[C]) Router[C]
	// Group runs fn on an inline group sharing this router's prefix.
	Group(fn func(r Router[C])) Router[C]
	// Route runs fn on a group mounted under prefix.
	Route(prefix string, fn func(r Router[C])) Router[C]

	// Routes lists everything registered so far, in registration order.
	Routes() []Route
}

// Route is one registered method and full pattern.
type Route struct {
	Method  string
	Pattern string
}

// New builds a router. Without WithContextFactory, C must be *Context.
func New[C handler.Context](opts ...Option[C]) Router[C] {
	return newMux(opts...)
}
