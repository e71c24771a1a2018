package router_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/doccms/core/handler"
	"github.com/dmitrymomot/doccms/core/router"
)

func text(s string) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, err := w.Write([]byte(s))
		return err
	}
}

func serve(t *testing.T, r http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStaticSegmentsWinOverWildcards(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Get("/{$}", func(*router.Context) handler.Response { return text("index") })
	r.Get("/new", func(*router.Context) handler.Response { return text("new") })
	r.Get("/{filename}", func(ctx *router.Context) handler.Response { return text("view " + ctx.Param("filename")) })
	r.Get("/{filename}/edit", func(ctx *router.Context) handler.Response { return text("edit " + ctx.Param("filename")) })

	tests := []struct {
		path string
		want string
	}{
		{"/", "index"},
		{"/new", "new"},
		{"/about.md", "view about.md"},
		{"/about.md/edit", "edit about.md"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := serve(t, r, http.MethodGet, tt.path)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	t.Parallel()

	var got error
	r := router.New(router.WithErrorHandler(func(ctx *router.Context, err error) {
		got = err
		ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
	}))
	r.Post("/{filename}/delete", func(*router.Context) handler.Response { return text("deleted") })

	t.Run("unknown path", func(t *testing.T) {
		w := serve(t, r, http.MethodGet, "/a/b/c")
		assert.Equal(t, http.StatusTeapot, w.Code)
		assert.ErrorIs(t, got, router.ErrNotFound)
	})

	t.Run("wrong method", func(t *testing.T) {
		w := serve(t, r, http.MethodGet, "/a.txt/delete")
		assert.ErrorIs(t, got, router.ErrMethodNotAllowed)
		assert.Equal(t, http.MethodPost, w.Header().Get("Allow"))
	})
}

func TestDefaultErrorHandlerStatus(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Post("/only-post", func(*router.Context) handler.Response { return text("ok") })

	assert.Equal(t, http.StatusNotFound, serve(t, r, http.MethodGet, "/missing/deep/path").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, serve(t, r, http.MethodGet, "/only-post").Code)
}

func TestMiddlewareOrder(t *testing.T) {
	t.Parallel()

	var trace []string
	mw := func(name string) handler.Middleware[*router.Context] {
		return func(next handler.HandlerFunc[*router.Context]) handler.HandlerFunc[*router.Context] {
			return func(ctx *router.Context) handler.Response {
				trace = append(trace, name)
				return next(ctx)
			}
		}
	}

	r := router.New(router.WithMiddleware(mw("root")))
	r.Get("/open", func(*router.Context) handler.Response { return text("open") })
	r.Group(func(g router.Router[*router.Context]) {
		g.Use(mw("group"))
		g.With(mw("inline")).Get("/guarded", func(*router.Context) handler.Response { return text("guarded") })
	})

	serve(t, r, http.MethodGet, "/guarded")
	assert.Equal(t, []string{"root", "group", "inline"}, trace)

	trace = nil
	serve(t, r, http.MethodGet, "/open")
	assert.Equal(t, []string{"root"}, trace)
}

func TestUseAfterRoutesPanics(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Get("/", func(*router.Context) handler.Response { return text("") })

	assert.Panics(t, func() {
		r.Use(func(next handler.HandlerFunc[*router.Context]) handler.HandlerFunc[*router.Context] { return next })
	})
}

func TestRoutePrefix(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Route("/_health", func(h router.Router[*router.Context]) {
		h.Get("/live", func(*router.Context) handler.Response { return text("ALIVE") })
	})

	w := serve(t, r, http.MethodGet, "/_health/live")
	assert.Equal(t, "ALIVE", w.Body.String())
	assert.Equal(t, []router.Route{{Method: http.MethodGet, Pattern: "/_health/live"}}, r.Routes())
}

func TestPanicRecovery(t *testing.T) {
	t.Parallel()

	var got error
	r := router.New(router.WithErrorHandler(func(ctx *router.Context, err error) {
		got = err
		ctx.ResponseWriter().WriteHeader(http.StatusInternalServerError)
	}))
	boom := errors.New("boom")
	r.Get("/panic", func(*router.Context) handler.Response { panic(boom) })

	w := serve(t, r, http.MethodGet, "/panic")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var pe *router.PanicError
	require.ErrorAs(t, got, &pe)
	assert.ErrorIs(t, got, boom)
	assert.True(t, strings.Contains(string(pe.Stack), "goroutine"))
}

func TestResponseErrorReachesErrorHandler(t *testing.T) {
	t.Parallel()

	renderErr := errors.New("render failed")
	var got error
	r := router.New(router.WithErrorHandler(func(ctx *router.Context, err error) { got = err }))
	r.Get("/", func(*router.Context) handler.Response {
		return func(http.ResponseWriter, *http.Request) error { return renderErr }
	})

	serve(t, r, http.MethodGet, "/")
	assert.ErrorIs(t, got, renderErr)
}

func TestNilResponse(t *testing.T) {
	t.Parallel()

	var got error
	r := router.New(router.WithErrorHandler(func(ctx *router.Context, err error) { got = err }))
	r.Get("/", func(*router.Context) handler.Response { return nil })

	serve(t, r, http.MethodGet, "/")
	assert.ErrorIs(t, got, router.ErrNilResponse)
}

type customContext struct {
	*router.Context
}

func TestCustomContextWithoutFactoryPanics(t *testing.T) {
	t.Parallel()

	r := router.New[*customContext]()
	r.Get("/", func(*customContext) handler.Response { return text("") })

	assert.Panics(t, func() {
		serve(t, r, http.MethodGet, "/")
	})
}

func TestMethodRegistration(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Method("/both", func(*router.Context) handler.Response { return text("both") }, "post", "PUT", "POST")

	assert.Equal(t, "both", serve(t, r, http.MethodPost, "/both").Body.String())
	assert.Equal(t, "both", serve(t, r, http.MethodPut, "/both").Body.String())
	assert.Len(t, r.Routes(), 2)

	assert.Panics(t, func() { r.Method("/x", nil) })
	assert.Panics(t, func() { r.Method("/x", nil, "BREW") })
}
