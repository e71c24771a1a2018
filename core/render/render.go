package render

import (
	"bytes"
	"fmt"
	"path"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

const (
	ContentTypeHTML  = "text/html; charset=utf-8"
	ContentTypePlain = "text/plain; charset=utf-8"
)

// Kind is the closed set of content kinds a document renders as.
// The zero value is PlainText.
type Kind uint8

const (
	PlainText Kind = iota
	Markdown
)

func (k Kind) String() string {
	switch k {
	case Markdown:
		return "markdown"
	default:
		return "plain_text"
	}
}

// ContentType returns the response content type of the kind's output.
func (k Kind) ContentType() string {
	switch k {
	case Markdown:
		return ContentTypeHTML
	default:
		return ContentTypePlain
	}
}

// KindOf derives the content kind from a document name's extension.
// Only ".md" is Markdown; every other or missing extension is PlainText.
func KindOf(name string) Kind {
	switch path.Ext(name) {
	case ".md":
		return Markdown
	default:
		return PlainText
	}
}

// Result is a rendered document.
// For Markdown, Body is an HTML fragment meant to be embedded in a page
// layout; for PlainText it is the stored content byte for byte.
type Result struct {
	Kind        Kind
	Body        []byte
	ContentType string
}

// Renderer converts documents into response bodies. It holds no per-call
// state and is safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

type options struct {
	unsafeHTML bool
	hardWraps  bool
}

// Option configures a Renderer.
type Option func(*options)

// WithUnsafeHTML lets raw HTML in Markdown through to the output.
// Off by default: raw HTML blocks are replaced with a comment.
func WithUnsafeHTML(enabled bool) Option {
	return func(o *options) {
		o.unsafeHTML = enabled
	}
}

// WithHardWraps renders single newlines in Markdown paragraphs as <br>.
func WithHardWraps(enabled bool) Option {
	return func(o *options) {
		o.hardWraps = enabled
	}
}

// New builds a Renderer with GitHub Flavored Markdown extensions.
func New(opts ...Option) *Renderer {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var rendererOptions []renderer.Option
	if o.unsafeHTML {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}
	if o.hardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}

	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(rendererOptions...),
		),
	}
}

// Render converts content according to the kind derived from name.
func (r *Renderer) Render(name string, content []byte) (Result, error) {
	kind := KindOf(name)

	switch kind {
	case Markdown:
		var buf bytes.Buffer
		if err := r.md.Convert(content, &buf); err != nil {
			return Result{}, fmt.Errorf("render %s: %w", name, err)
		}
		return Result{Kind: kind, Body: buf.Bytes(), ContentType: kind.ContentType()}, nil
	default:
		return Result{Kind: kind, Body: content, ContentType: kind.ContentType()}, nil
	}
}
