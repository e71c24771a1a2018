package response

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"github.com/dmitrymomot/doccms/core/handler"
)

// ErrNilTemplate is returned when a template response is rendered without a template.
var ErrNilTemplate = errors.New("template is nil")

// Template creates an HTML response using html/template with 200 OK status.
// The template is buffered before writing, so a failing template never
// produces partial output.
func Template(tmpl *template.Template, data any) handler.Response {
	return TemplateWithStatus(tmpl, data, http.StatusOK)
}

// TemplateWithStatus creates an HTML response using html/template with custom status code.
func TemplateWithStatus(tmpl *template.Template, data any, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		if tmpl == nil {
			return ErrNilTemplate
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return err
		}

		if status == 0 {
			status = http.StatusOK
		}
		w.Header().Set("Content-Type", contentTypeHTML)
		w.WriteHeader(status)
		_, err := w.Write(buf.Bytes())
		return err
	}
}
