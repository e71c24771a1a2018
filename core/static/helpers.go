package static

import (
	"io/fs"
	"net/http"
	"path"
)

// noListing refuses to open a directory unless it has an index.html, so
// http.FileServer never renders a listing.
type noListing struct {
	http.FileSystem
}

func (n noListing) Open(name string) (http.File, error) {
	f, err := n.FileSystem.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err == nil && info.IsDir() {
		var idx http.File
		if idx, err = n.FileSystem.Open(path.Join(name, "index.html")); err == nil {
			_ = idx.Close()
		} else {
			err = fs.ErrNotExist
		}
	}
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}
