package middleware

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/doccms/core/handler"
)

const (
	defaultRequestIDHeader = "X-Request-ID"
	maxRequestIDLen        = 128
)

type requestIDKey struct{}

// RequestIDContextKey is where RequestID stores the ID. Hand it to
// logger.WithContextValue to stamp every record.
var RequestIDContextKey any = requestIDKey{}

// RequestIDConfig tunes RequestIDWithConfig. The zero value generates a
// UUID per request and sends it as X-Request-ID.
type RequestIDConfig struct {
	Skip       func(ctx handler.Context) bool
	Generator  func() string
	HeaderName string
	// UseExisting keeps an incoming ID from a trusted proxy when it is at
	// most 128 printable ASCII characters.
	UseExisting bool
}

// RequestID tags each request with a fresh UUID.
func RequestID[C handler.Context]() handler.Middleware[C] {
	return RequestIDWithConfig[C](RequestIDConfig{})
}

// RequestIDWithConfig tags each request with an ID, stores it on the context
// and echoes it in a response header.
func RequestIDWithConfig[C handler.Context](cfg RequestIDConfig) handler.Middleware[C] {
	header := cfg.HeaderName
	if header == "" {
		header = defaultRequestIDHeader
	}
	generate := cfg.Generator
	if generate == nil {
		generate = uuid.NewString
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			id := ""
			if cfg.UseExisting {
				id = ctx.Request().Header.Get(header)
				if !validRequestID(id) {
					id = ""
				}
			}
			if id == "" {
				id = generate()
			}

			ctx.SetValue(requestIDKey{}, id)
			// Written before the handler runs so error pages carry it as well.
			ctx.ResponseWriter().Header().Set(header, id)
			return next(ctx)
		}
	}
}

// GetRequestID returns the ID RequestID stored on ctx.
func GetRequestID(ctx handler.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := range len(id) {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}
