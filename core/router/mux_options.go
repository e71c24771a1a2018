package router

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/doccms/core/handler"
)

// ContextFactory builds the per-request context handed to handlers.
type ContextFactory[C handler.Context] func(w http.ResponseWriter, r *http.Request, params map[string]string) C

// Option customizes a router built by New.
type Option[C handler.Context] func(*mux[C])

// WithContextFactory is required whenever C is not *Context.
func WithContextFactory[C handler.Context](f ContextFactory[C]) Option[C] {
	return func(m *mux[C]) { m.newContext = f }
}

// WithErrorHandler replaces the plain-text default. A nil h is ignored.
func WithErrorHandler[C handler.Context](h handler.ErrorHandler[C]) Option[C] {
	return func(m *mux[C]) {
		if h != nil {
			m.errorHandler = h
		}
	}
}

// WithMiddleware is the same as calling Use right after New.
func WithMiddleware[C handler.Context](mw ...handler.Middleware[C]) Option[C] {
	return func(m *mux[C]) { m.middlewares = append(m.middlewares, mw...) }
}

// WithLogger receives panics that happen after output started. Discarded by default.
func WithLogger[C handler.Context](l *slog.Logger) Option[C] {
	return func(m *mux[C]) {
		if l != nil {
			m.logger = l
		}
	}
}
