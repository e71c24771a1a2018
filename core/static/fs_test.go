package static_test

import (
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/doccms/core/handler"
	"github.com/dmitrymomot/doccms/core/router"
	"github.com/dmitrymomot/doccms/core/static"
)

func serve(t *testing.T, h handler.HandlerFunc[*router.Context], path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	require.NoError(t, h(router.NewContext(w, req, nil))(w, req))
	return w
}

func TestFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"assets/style.css":       {Data: []byte("body { margin: 0; }")},
		"assets/img/logo.png":    {Data: []byte("PNG")},
		"assets/docs/index.html": {Data: []byte("<p>docs</p>")},
		"secret.txt":             {Data: []byte("top secret")},
	}

	h := static.FS[*router.Context](fsys,
		static.WithSubFS("assets"),
		static.WithFSStripPrefix("/assets"),
		static.WithCacheControl("public, max-age=3600"),
	)

	tests := []struct {
		name   string
		path   string
		status int
		body   string
	}{
		{name: "stylesheet", path: "/assets/style.css", status: http.StatusOK, body: "body { margin: 0; }"},
		{name: "nested file", path: "/assets/img/logo.png", status: http.StatusOK, body: "PNG"},
		{name: "directory with index", path: "/assets/docs/", status: http.StatusOK, body: "<p>docs</p>"},
		{name: "directory listing hidden", path: "/assets/img/", status: http.StatusNotFound},
		{name: "missing file", path: "/assets/app.js", status: http.StatusNotFound},
		{name: "outside sub filesystem", path: "/assets/../secret.txt", status: http.StatusNotFound},
		{name: "prefix mismatch", path: "/style.css", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := serve(t, h, tt.path)
			if tt.status == http.StatusOK {
				assert.Equal(t, tt.status, w.Code)
				assert.Equal(t, tt.body, w.Body.String())
				assert.Equal(t, "public, max-age=3600", w.Header().Get("Cache-Control"))
				return
			}
			assert.NotEqual(t, http.StatusOK, w.Code)
			assert.NotContains(t, w.Body.String(), "top secret")
		})
	}
}

func TestFS_ContentType(t *testing.T) {
	t.Parallel()

	h := static.FS[*router.Context](fstest.MapFS{
		"style.css": {Data: []byte("a{}")},
	})

	w := serve(t, h, "/style.css")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/css")
	assert.Empty(t, w.Header().Get("Cache-Control"))
}

type failingFS struct{}

func (failingFS) Open(string) (fs.File, error) {
	return nil, fs.ErrInvalid
}

func TestFS_Startup(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		static.FS[*router.Context](fstest.MapFS{"a.txt": {}}, static.WithSubFS("../outside"))
	})
	assert.Panics(t, func() {
		static.FS[*router.Context](failingFS{})
	})
	assert.NotPanics(t, func() {
		static.FS[*router.Context](fstest.MapFS{})
	})
}
