package static

import (
	"io/fs"
	"net/http"

	"github.com/dmitrymomot/doccms/core/handler"
)

type fsConfig struct {
	fs           fs.FS
	stripPrefix  string
	subPath      string
	cacheControl string
}

// FSOption configures FS.
type FSOption func(*fsConfig)

// WithFSStripPrefix removes prefix from the URL path before the file lookup,
// so "/assets/style.css" mounted with "/assets" serves "style.css".
func WithFSStripPrefix(prefix string) FSOption {
	return func(c *fsConfig) {
		c.stripPrefix = prefix
	}
}

// WithSubFS serves files from a subdirectory of the filesystem.
// The path uses forward slashes regardless of OS.
func WithSubFS(path string) FSOption {
	return func(c *fsConfig) {
		c.subPath = path
	}
}

// WithCacheControl sets the Cache-Control header on every served file.
func WithCacheControl(value string) FSOption {
	return func(c *fsConfig) {
		c.cacheControl = value
	}
}

// FS creates a handler that serves files from an fs.FS, usually an embed.FS.
// Directory listings are never produced; a directory resolves only when it
// holds an index.html.
//
// FS panics at startup when the sub-path is invalid or the filesystem root
// cannot be opened.
//
//	//go:embed assets
//	var assets embed.FS
//
//	r.Get("/assets/style.css", static.FS[*cms.Context](assets,
//		static.WithSubFS("assets"),
//		static.WithFSStripPrefix("/assets"),
//	))
func FS[C handler.Context](fsys fs.FS, opts ...FSOption) handler.HandlerFunc[C] {
	config := &fsConfig{fs: fsys}
	for _, opt := range opts {
		opt(config)
	}

	if config.subPath != "" {
		sub, err := fs.Sub(fsys, config.subPath)
		if err != nil {
			panic("static.FS: invalid sub-path '" + config.subPath + "': " + err.Error())
		}
		config.fs = sub
	}

	if _, err := config.fs.Open("."); err != nil {
		panic("static.FS: filesystem is not accessible: " + err.Error())
	}

	fileServer := http.FileServer(noListing{http.FS(config.fs)})
	if config.stripPrefix != "" {
		fileServer = http.StripPrefix(config.stripPrefix, fileServer)
	}

	return func(ctx C) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			if config.cacheControl != "" {
				w.Header().Set("Cache-Control", config.cacheControl)
			}
			fileServer.ServeHTTP(w, r)
			return nil
		}
	}
}
