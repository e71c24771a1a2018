package binder

import (
	"fmt"
	"mime"
	"net/http"
	"reflect"
	"strings"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20 // 10 MB

// Form creates a binder for application/x-www-form-urlencoded and
// multipart/form-data request bodies.
//
// Supported struct tags:
//   - `form:"name"`     - binds to form field "name"
//   - `form:"name,raw"` - binds the value byte-for-byte, without sanitizing
//   - `form:"-"`        - skips the field
//
// Fields without a form tag bind to the lowercased field name. String values
// are sanitized (NUL, CR, LF and other control characters removed) unless the
// field is tagged raw: use raw for passwords and multi-line text.
//
// A request without a body and without a Content-Type binds nothing and is not an error,
// so every field keeps its zero value.
//
// Example:
//
//	type SaveRequest struct {
//		Name    string `form:"filename,raw"`
//		Content string `form:"file_content,raw"`
//		Tags    []string `form:"tags"` // ?tags=a&tags=b or tags=a,b
//	}
//
//	var req SaveRequest
//	if err := binder.Form()(r, &req); err != nil {
//		return response.Error(response.ErrBadRequest.WithError(err))
//	}
func Form() Binder {
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			if r.ContentLength == 0 {
				return decode(v, nil)
			}
			return fmt.Errorf("%w: missing content-type header, expected application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
		}

		mediaType, params, err := mime.ParseMediaType(contentType)
		if err != nil {
			return fmt.Errorf("%w: malformed content type", ErrFailedToParseForm)
		}

		var values map[string][]string

		switch mediaType {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
			}
			values = r.PostForm

		case "multipart/form-data":
			if b := params["boundary"]; b == "" || len(b) > 70 || strings.ContainsAny(b, "\x00\r\n") {
				return fmt.Errorf("%w: invalid boundary parameter", ErrFailedToParseForm)
			}

			// Larger files spill to disk
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
			}
			if r.MultipartForm != nil {
				values = r.MultipartForm.Value
			}

		default:
			return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mediaType)
		}

		return decode(v, values)
	}
}

// fieldTag is a parsed struct tag.
type fieldTag struct {
	name string
	raw  bool
	skip bool
}

// parseFieldTag extracts the parameter name and options from struct tags.
// If no tag is present, it defaults to the lowercase field name.
func parseFieldTag(field reflect.StructField, tagName string) fieldTag {
	tag := field.Tag.Get(tagName)
	if tag == "" {
		return fieldTag{name: strings.ToLower(field.Name)}
	}
	if tag == "-" {
		return fieldTag{skip: true}
	}

	name, opts, _ := strings.Cut(tag, ",")
	ft := fieldTag{name: name, skip: name == ""}
	for opt := range strings.SplitSeq(opts, ",") {
		if strings.TrimSpace(opt) == "raw" {
			ft.raw = true
		}
	}
	return ft
}
