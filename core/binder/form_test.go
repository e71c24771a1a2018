package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/doccms/core/binder"
)

type document struct {
	Name     string   `form:"filename,raw"`
	Content  string   `form:"file_content,raw"`
	Title    string   `form:"title"`
	Tags     []string `form:"tags"`
	Count    int      `form:"count"`
	Draft    *bool    `form:"draft"`
	Ignored  string   `form:"-"`
	Fallback string
}

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestForm_URLEncoded(t *testing.T) {
	t.Parallel()

	req := formRequest(url.Values{
		"filename":     {"notes.md"},
		"file_content": {"# Title\r\n\r\nbody\n"},
		"title":        {"line\nbreak\x00"},
		"tags":         {"a,b", "c"},
		"count":        {"3"},
		"draft":        {"on"},
		"Ignored":      {"x"},
		"fallback":     {"lowercased"},
	})

	var doc document
	require.NoError(t, binder.Form()(req, &doc))

	assert.Equal(t, "notes.md", doc.Name)
	assert.Equal(t, "# Title\r\n\r\nbody\n", doc.Content, "raw fields are kept verbatim")
	assert.Equal(t, "linebreak", doc.Title, "control characters are stripped")
	assert.Equal(t, []string{"a", "b", "c"}, doc.Tags)
	assert.Equal(t, 3, doc.Count)
	require.NotNil(t, doc.Draft)
	assert.True(t, *doc.Draft)
	assert.Empty(t, doc.Ignored)
	assert.Equal(t, "lowercased", doc.Fallback)
}

func TestForm_QueryIsNotBound(t *testing.T) {
	t.Parallel()

	req := formRequest(url.Values{})
	req.URL.RawQuery = "filename=from-query"

	var doc document
	require.NoError(t, binder.Form()(req, &doc))
	assert.Empty(t, doc.Name)
}

func TestForm_Multipart(t *testing.T) {
	t.Parallel()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("filename", "a.txt"))
	require.NoError(t, mw.WriteField("file_content", "x\ny"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var doc document
	require.NoError(t, binder.Form()(req, &doc))
	assert.Equal(t, "a.txt", doc.Name)
	assert.Equal(t, "x\ny", doc.Content)
}

func TestForm_EmptyBodyWithoutContentType(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", nil)

	var doc document
	require.NoError(t, binder.Form()(req, &doc))
	assert.Equal(t, document{}, doc)
}

func TestForm_Errors(t *testing.T) {
	t.Parallel()

	t.Run("body without content type", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("filename=a"))
		var doc document
		assert.ErrorIs(t, binder.Form()(req, &doc), binder.ErrMissingContentType)
	})

	t.Run("unsupported media type", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		var doc document
		assert.ErrorIs(t, binder.Form()(req, &doc), binder.ErrUnsupportedMediaType)
	})

	t.Run("multipart without boundary", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("x"))
		req.Header.Set("Content-Type", "multipart/form-data")
		var doc document
		assert.ErrorIs(t, binder.Form()(req, &doc), binder.ErrFailedToParseForm)
	})

	t.Run("type conversion", func(t *testing.T) {
		t.Parallel()

		var doc document
		err := binder.Form()(formRequest(url.Values{"count": {"many"}}), &doc)
		assert.ErrorIs(t, err, binder.ErrFailedToParseForm)
		assert.Contains(t, err.Error(), "Count")
	})

	t.Run("non pointer target", func(t *testing.T) {
		t.Parallel()

		err := binder.Form()(formRequest(url.Values{}), document{})
		assert.ErrorIs(t, err, binder.ErrFailedToParseForm)
	})
}
