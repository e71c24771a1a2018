package response

import (
	"net/http"

	"github.com/dmitrymomot/doccms/core/handler"
)

// RedirectWithStatus sends the client to url. A status outside 3xx becomes 302.
func RedirectWithStatus(url string, status int) handler.Response {
	if status < http.StatusMultipleChoices || status > 399 {
		status = http.StatusFound
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		http.Redirect(w, r, url, status)
		return nil
	}
}

// Redirect is a 302 to url.
func Redirect(url string) handler.Response { return RedirectWithStatus(url, http.StatusFound) }

// RedirectSeeOther is the 303 used after a successful form POST.
func RedirectSeeOther(url string) handler.Response {
	return RedirectWithStatus(url, http.StatusSeeOther)
}
