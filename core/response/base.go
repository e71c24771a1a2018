package response

import (
	"net/http"

	"github.com/dmitrymomot/doccms/core/handler"
)

const (
	contentTypeText = "text/plain; charset=utf-8"
	contentTypeHTML = "text/html; charset=utf-8"
)

// Render writes resp right away. Error handlers use it; a render failure
// falls back to a bare 500.
func Render(ctx handler.Context, resp handler.Response) {
	w := ctx.ResponseWriter()
	if err := resp(w, ctx.Request()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// BytesWithStatus writes content verbatim. An empty contentType leaves the
// header unset and a zero status means 200.
func BytesWithStatus(content []byte, contentType string, status int) handler.Response {
	if status == 0 {
		status = http.StatusOK
	}
	return func(w http.ResponseWriter, _ *http.Request) error {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(status)
		if len(content) == 0 {
			return nil
		}
		_, err := w.Write(content)
		return err
	}
}

func Bytes(content []byte, contentType string) handler.Response {
	return BytesWithStatus(content, contentType, http.StatusOK)
}

func StringWithStatus(s string, status int) handler.Response {
	return BytesWithStatus([]byte(s), contentTypeText, status)
}

func String(s string) handler.Response { return StringWithStatus(s, http.StatusOK) }

func HTML(s string) handler.Response {
	return BytesWithStatus([]byte(s), contentTypeHTML, http.StatusOK)
}

// NoContent is an empty 204.
func NoContent() handler.Response { return BytesWithStatus(nil, "", http.StatusNoContent) }
