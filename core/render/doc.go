// Package render turns stored documents into response bodies.
//
// A document's Kind comes from its extension: ".md" is Markdown, anything
// else (including no extension) is PlainText. Markdown is converted to an
// HTML fragment with goldmark (GitHub Flavored Markdown); the caller embeds
// that fragment in its page layout. PlainText passes through untouched.
//
//	res, err := renderer.Render("history.md", content)
//	switch res.Kind {
//	case render.Markdown:
//		// wrap res.Body in the layout, serve as text/html
//	case render.PlainText:
//		// serve res.Body as text/plain
//	}
//
// Rendering does no I/O and is deterministic for the same input.
package render
