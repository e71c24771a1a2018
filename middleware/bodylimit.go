package middleware

import (
	"fmt"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/dmitrymomot/doccms/core/handler"
	"github.com/dmitrymomot/doccms/core/response"
)

// Size units for BodyLimitWithSize.
const (
	KB int64 = 1 << 10
	MB int64 = 1 << 20
)

const defaultBodyLimit = 4 * MB

// BodyLimitConfig tunes BodyLimitWithConfig.
type BodyLimitConfig struct {
	Skip    func(ctx handler.Context) bool
	MaxSize int64 // 4 MiB when zero
	// ErrorHandler answers requests whose Content-Length is already over
	// the limit. The default is a 413 naming both sizes.
	ErrorHandler func(ctx handler.Context, contentLength, maxSize int64) handler.Response
}

// BodyLimit caps request bodies at 4 MiB.
func BodyLimit[C handler.Context]() handler.Middleware[C] {
	return BodyLimitWithConfig[C](BodyLimitConfig{})
}

// BodyLimitWithSize caps request bodies at maxSize bytes.
func BodyLimitWithSize[C handler.Context](maxSize int64) handler.Middleware[C] {
	return BodyLimitWithConfig[C](BodyLimitConfig{MaxSize: maxSize})
}

// BodyLimitWithConfig rejects a declared Content-Length over the limit
// straight away. Any other body is wrapped in http.MaxBytesReader, so a
// handler reading too far gets *http.MaxBytesError, which the router maps to 413.
func BodyLimitWithConfig[C handler.Context](cfg BodyLimitConfig) handler.Middleware[C] {
	limit := cfg.MaxSize
	if limit <= 0 {
		limit = defaultBodyLimit
	}
	reject := cfg.ErrorHandler
	if reject == nil {
		reject = tooLarge
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			req := ctx.Request()
			if req.ContentLength > limit {
				return reject(ctx, req.ContentLength, limit)
			}
			if req.Body != nil && req.Body != http.NoBody {
				req.Body = http.MaxBytesReader(ctx.ResponseWriter(), req.Body, limit)
			}
			return next(ctx)
		}
	}
}

func tooLarge(_ handler.Context, size, limit int64) handler.Response {
	msg := fmt.Sprintf("Request body is %s, the limit is %s.",
		humanize.IBytes(uint64(size)), humanize.IBytes(uint64(limit)))
	return response.Error(response.ErrRequestEntityTooLarge.WithMessage(msg))
}
