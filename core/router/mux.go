package router

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"runtime/debug"
	"slices"
	"strings"

	"github.com/dmitrymomot/doccms/core/handler"
)

var wildcardRe = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)(?:\.\.\.)?\}`)

var supportedMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// mux is the private implementation of Router interface.
type mux[C handler.Context] struct {
	serveMux     *http.ServeMux
	routes       *[]Route
	middlewares  []handler.Middleware[C]
	errorHandler handler.ErrorHandler[C]
	newContext   ContextFactory[C]
	logger       *slog.Logger
	parent       *mux[C] // for inline groups
	prefix       string
	inline       bool
	sealed       bool // routes registered; Use is no longer allowed
}

// newMux creates a new router instance.
func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		serveMux:     http.NewServeMux(),
		routes:       &[]Route{},
		errorHandler: defaultErrorHandler[C],
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.newContext == nil {
		m.newContext = func(w http.ResponseWriter, r *http.Request, params map[string]string) C {
			// Only the default *Context works without a factory.
			var zero C
			if _, ok := any(zero).(*Context); ok {
				return any(NewContext(w, r, params)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	return m
}

// ServeHTTP implements http.Handler interface.
func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if _, pattern := m.serveMux.Handler(r); pattern != "" {
		m.serveMux.ServeHTTP(w, r)
		return
	}

	// No registered pattern matched: report through the error handler so the
	// application renders its own not-found page.
	ww := newResponseWriter(w)
	ctx := m.newContext(ww, r, nil)

	if allowed := m.allowedMethods(r); len(allowed) > 0 {
		ww.Header().Set("Allow", strings.Join(allowed, ", "))
		m.errorHandler(ctx, ErrMethodNotAllowed)
		return
	}
	m.errorHandler(ctx, ErrNotFound)
}

// allowedMethods lists the methods that would match r's path.
func (m *mux[C]) allowedMethods(r *http.Request) []string {
	var allowed []string
	for _, method := range supportedMethods {
		if method == r.Method {
			continue
		}
		probe := r.Clone(r.Context())
		probe.Method = method
		if _, pattern := m.serveMux.Handler(probe); pattern != "" {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

// dispatch runs fn for a matched request: builds the context, applies the
// root middleware, recovers panics and renders the response.
func (m *mux[C]) dispatch(params []string, fn handler.HandlerFunc[C]) http.HandlerFunc {
	root := m.root()

	return func(w http.ResponseWriter, r *http.Request) {
		ww := newResponseWriter(w)

		var paramsMap map[string]string
		if len(params) > 0 {
			paramsMap = make(map[string]string, len(params))
			for _, key := range params {
				paramsMap[key] = r.PathValue(key)
			}
		}

		ctx := root.newContext(ww, r, paramsMap)

		// Recover from panics to prevent server crashes
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			pe := &PanicError{Value: p, Stack: debug.Stack()}
			if ww.Written() {
				root.logger.Error("panic after response written",
					"value", p,
					"stack", string(pe.Stack),
					"path", r.URL.Path,
					"method", r.Method,
					"status", ww.Status(),
				)
				return
			}
			root.errorHandler(ctx, pe)
		}()

		h := fn
		if len(root.middlewares) > 0 {
			h = handler.Chain(h, root.middlewares...)
		}

		response := h(ctx)
		if response == nil {
			root.errorHandler(ctx, ErrNilResponse)
			return
		}

		if err := response(ww, r); err != nil {
			root.errorHandler(ctx, err)
		}
	}
}

// Get registers a handler for GET requests. HEAD requests match it as well.
func (m *mux[C]) Get(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodGet, pattern, h)
}

// Post registers a handler for POST requests.
func (m *mux[C]) Post(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPost, pattern, h)
}

// Put registers a handler for PUT requests.
func (m *mux[C]) Put(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPut, pattern, h)
}

// Delete registers a handler for DELETE requests.
func (m *mux[C]) Delete(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodDelete, pattern, h)
}

// Patch registers a handler for PATCH requests.
func (m *mux[C]) Patch(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPatch, pattern, h)
}

// Method registers a handler for one or more specific HTTP methods.
func (m *mux[C]) Method(pattern string, h handler.HandlerFunc[C], methods ...string) {
	if len(methods) == 0 {
		panic(fmt.Errorf("%w: no methods provided", ErrInvalidMethod))
	}

	seen := make(map[string]bool)
	for _, method := range methods {
		method = strings.ToUpper(method)
		if !slices.Contains(supportedMethods, method) {
			panic(fmt.Errorf("%w: %s", ErrInvalidMethod, method))
		}
		if seen[method] {
			continue
		}
		seen[method] = true
		m.handle(method, pattern, h)
	}
}

// Use appends middleware to the router.
func (m *mux[C]) Use(middlewares ...handler.Middleware[C]) {
	if m.sealed {
		panic("router: all middlewares must be defined before routes on a mux")
	}
	m.middlewares = append(m.middlewares, middlewares...)
}

// With creates a new inline router with additional middleware.
func (m *mux[C]) With(middlewares ...handler.Middleware[C]) Router[C] {
	return &mux[C]{
		inline:       true,
		parent:       m,
		prefix:       m.prefix,
		serveMux:     m.serveMux,
		routes:       m.routes,
		middlewares:  middlewares,
		errorHandler: m.errorHandler,
		newContext:   m.newContext,
		logger:       m.logger,
	}
}

// Group creates a new inline router for grouping routes.
func (m *mux[C]) Group(fn func(r Router[C])) Router[C] {
	im := m.With()
	if fn != nil {
		fn(im)
	}
	return im
}

// Route creates an inline router whose patterns are prefixed with prefix.
func (m *mux[C]) Route(prefix string, fn func(r Router[C])) Router[C] {
	if fn == nil {
		panic(fmt.Errorf("%w on '%s'", ErrNilSubrouter, prefix))
	}
	if prefix == "" || prefix[0] != '/' {
		panic(fmt.Errorf("%w: '%s'", ErrInvalidPattern, prefix))
	}

	im := m.With().(*mux[C])
	im.prefix = m.prefix + strings.TrimSuffix(prefix, "/")
	fn(im)
	return im
}

// Routes returns all registered routes in registration order.
func (m *mux[C]) Routes() []Route {
	return slices.Clone(*m.routes)
}

// root returns the top-level mux that owns the shared state.
func (m *mux[C]) root() *mux[C] {
	curr := m
	for curr.inline && curr.parent != nil {
		curr = curr.parent
	}
	return curr
}

// handle registers fn for method + pattern on the shared ServeMux.
func (m *mux[C]) handle(method, pattern string, fn handler.HandlerFunc[C]) {
	if len(pattern) == 0 || pattern[0] != '/' {
		panic(fmt.Errorf("%w: '%s'", ErrInvalidPattern, pattern))
	}
	full := m.prefix + pattern

	// Inline routers chain their own middlewares (and their inline parents')
	// at registration; the root's middlewares are applied at dispatch.
	var inlineMiddlewares []handler.Middleware[C]
	for curr := m; curr != nil && curr.inline; curr = curr.parent {
		if len(curr.middlewares) > 0 {
			inlineMiddlewares = append(slices.Clone(curr.middlewares), inlineMiddlewares...)
		}
	}
	h := fn
	if len(inlineMiddlewares) > 0 {
		h = handler.Chain(fn, inlineMiddlewares...)
	}

	root := m.root()
	root.sealed = true

	var params []string
	for _, match := range wildcardRe.FindAllStringSubmatch(full, -1) {
		params = append(params, match[1])
	}

	m.serveMux.HandleFunc(method+" "+full, m.dispatch(params, h))
	*m.routes = append(*m.routes, Route{Method: method, Pattern: full})
}
