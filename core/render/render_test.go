package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/doccms/core/render"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want render.Kind
	}{
		{"history.md", render.Markdown},
		{"changes.txt", render.PlainText},
		{"README", render.PlainText},
		{"archive.md.txt", render.PlainText},
		{"notes.markdown", render.PlainText},
		{"UPPER.MD", render.PlainText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, render.KindOf(tt.name))
		})
	}

	var zero render.Kind
	assert.Equal(t, render.PlainText, zero)
	assert.Equal(t, "markdown", render.Markdown.String())
	assert.Equal(t, "plain_text", zero.String())
}

func TestRender(t *testing.T) {
	t.Parallel()

	r := render.New()

	t.Run("markdown heading becomes h1", func(t *testing.T) {
		t.Parallel()

		res, err := r.Render("history.md", []byte("# Ruby is..."))
		require.NoError(t, err)
		assert.Equal(t, render.Markdown, res.Kind)
		assert.Equal(t, "text/html; charset=utf-8", res.ContentType)
		assert.Contains(t, string(res.Body), "<h1>Ruby is...</h1>")
	})

	t.Run("gfm tables and strikethrough", func(t *testing.T) {
		t.Parallel()

		res, err := r.Render("t.md", []byte("| a | b |\n|---|---|\n| 1 | 2 |\n\n~~gone~~"))
		require.NoError(t, err)
		assert.Contains(t, string(res.Body), "<table>")
		assert.Contains(t, string(res.Body), "<del>gone</del>")
	})

	t.Run("raw html is dropped by default", func(t *testing.T) {
		t.Parallel()

		res, err := r.Render("x.md", []byte("<script>alert(1)</script>\n"))
		require.NoError(t, err)
		assert.NotContains(t, string(res.Body), "<script>")

		unsafe := render.New(render.WithUnsafeHTML(true))
		res, err = unsafe.Render("x.md", []byte("<div>raw</div>\n"))
		require.NoError(t, err)
		assert.Contains(t, string(res.Body), "<div>raw</div>")
	})

	t.Run("plain text is verbatim", func(t *testing.T) {
		t.Parallel()

		content := []byte("# not a heading\n<b>&amp;</b>\x00")
		res, err := r.Render("changes.txt", content)
		require.NoError(t, err)
		assert.Equal(t, render.PlainText, res.Kind)
		assert.Equal(t, "text/plain; charset=utf-8", res.ContentType)
		assert.Equal(t, content, res.Body)
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()

		a, err := r.Render("a.md", []byte("*hi* there"))
		require.NoError(t, err)
		b, err := r.Render("a.md", []byte("*hi* there"))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("hard wraps", func(t *testing.T) {
		t.Parallel()

		res, err := render.New(render.WithHardWraps(true)).Render("a.md", []byte("one\ntwo"))
		require.NoError(t, err)
		assert.Contains(t, string(res.Body), "<br>")
	})
}
