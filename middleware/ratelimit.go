package middleware

import (
	"net/http"
	"strconv"

	"github.com/dmitrymomot/doccms/core/handler"
	"github.com/dmitrymomot/doccms/core/response"
	"github.com/dmitrymomot/doccms/pkg/clientip"
	"github.com/dmitrymomot/doccms/pkg/ratelimiter"
)

// RateLimitConfig configures the rate limiting middleware.
type RateLimitConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// Limiter is the rate limiting implementation to use
	Limiter ratelimiter.RateLimiter
	// KeyExtractor returns the bucket key for a request (default: client IP)
	KeyExtractor func(ctx handler.Context) string
	// ErrorHandler handles rejected requests (default: 429 through the router's error handler)
	ErrorHandler func(ctx handler.Context, result *ratelimiter.Result) handler.Response
	// SetHeaders adds X-RateLimit-* headers to every response
	SetHeaders bool
}

// RateLimit rejects requests once their key has used up its bucket.
// Panics if no limiter is provided.
//
//	limiter, _ := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), ratelimiter.Config{
//		Capacity:       10,
//		RefillRate:     10,
//		RefillInterval: time.Minute,
//	})
//	r.With(middleware.RateLimit[*cms.Context](middleware.RateLimitConfig{
//		Limiter: limiter,
//	})).Post("/users/signin", signIn)
//
// A failing limiter fails the request with a 500 rather than letting it through.
func RateLimit[C handler.Context](cfg RateLimitConfig) handler.Middleware[C] {
	if cfg.Limiter == nil {
		panic("ratelimit middleware: limiter is required")
	}

	if cfg.KeyExtractor == nil {
		cfg.KeyExtractor = func(ctx handler.Context) string {
			return clientip.GetIP(ctx.Request())
		}
	}

	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(_ handler.Context, _ *ratelimiter.Result) handler.Response {
			return response.Error(response.ErrTooManyRequests)
		}
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			result, err := cfg.Limiter.Allow(ctx, cfg.KeyExtractor(ctx))
			if err != nil {
				return response.Error(response.ErrInternalServerError.WithError(err))
			}

			var resp handler.Response
			if result.Allowed() {
				resp = next(ctx)
			} else {
				resp = withRetryAfter(cfg.ErrorHandler(ctx, result), result)
			}

			if cfg.SetHeaders {
				return withRateLimitHeaders(resp, result)
			}
			return resp
		}
	}
}

func withRetryAfter(resp handler.Response, result *ratelimiter.Result) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		if wait := result.RetryAfter(); wait > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(int(wait.Seconds()+0.5)))
		}
		return resp(w, r)
	}
}

func withRateLimitHeaders(resp handler.Response, result *ratelimiter.Result) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, result.Remaining)))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
		return resp(w, r)
	}
}
