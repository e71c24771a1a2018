package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/doccms/core/handler"
	"github.com/dmitrymomot/doccms/core/logger"
	"github.com/dmitrymomot/doccms/pkg/clientip"
)

// LoggingConfig tunes LoggingWithConfig. Zero fields take defaults.
type LoggingConfig struct {
	Skip   func(ctx handler.Context) bool
	Logger *slog.Logger // slog.Default()
	// LogLevel applies to 2xx and 3xx responses that are not slow. Info by default.
	LogLevel slog.Level
	// SlowRequestThreshold raises slow successful requests to warn. 5s by default.
	SlowRequestThreshold time.Duration
	Component            string // "http"
}

// Logging writes one record per request to slog.Default().
func Logging[C handler.Context]() handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{})
}

// LoggingWithLogger writes one record per request to log.
func LoggingWithLogger[C handler.Context](log *slog.Logger) handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{Logger: log})
}

// LoggingWithConfig writes one record per request after the response has
// rendered: error level for 5xx, warn for 4xx and slow requests.
func LoggingWithConfig[C handler.Context](cfg LoggingConfig) handler.Middleware[C] {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	if cfg.LogLevel == 0 {
		cfg.LogLevel = slog.LevelInfo
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			start := time.Now()
			resp := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				cw := &countingWriter{ResponseWriter: w}
				err := resp(cw, r)
				elapsed := time.Since(start)
				status := cw.finalStatus(err)

				req := ctx.Request()
				id, _ := GetRequestID(ctx)
				attrs := []slog.Attr{
					logger.Component(cfg.Component),
					logger.Event("request"),
					logger.Method(req.Method),
					logger.Path(req.URL.Path),
					logger.StatusCode(status),
					logger.Count("bytes_out", cw.n),
					logger.Duration(elapsed),
					logger.ClientIP(clientip.GetIP(req)),
					logger.UserAgent(req.UserAgent()),
					logger.RequestID(id),
				}

				level := cfg.LogLevel
				switch {
				case status >= http.StatusInternalServerError:
					level = slog.LevelError
					attrs = append(attrs, logger.Error(err))
				case status >= http.StatusBadRequest:
					level = slog.LevelWarn
				case elapsed > cfg.SlowRequestThreshold:
					level = slog.LevelWarn
					attrs = append(attrs, slog.Bool("slow_request", true))
				}

				log.LogAttrs(req.Context(), level, "HTTP request completed", attrs...)
				return err
			}
		}
	}
}

// countingWriter records the status and body size of a response.
type countingWriter struct {
	http.ResponseWriter
	status int
	n      int
}

func (cw *countingWriter) WriteHeader(status int) {
	if cw.status != 0 {
		return
	}
	cw.status = status
	cw.ResponseWriter.WriteHeader(status)
}

func (cw *countingWriter) Write(b []byte) (int, error) {
	cw.WriteHeader(http.StatusOK)
	n, err := cw.ResponseWriter.Write(b)
	cw.n += n
	return n, err
}

func (cw *countingWriter) Unwrap() http.ResponseWriter { return cw.ResponseWriter }

// finalStatus predicts the code the router's error handler will send when
// the response failed before writing anything.
func (cw *countingWriter) finalStatus(err error) int {
	if cw.status != 0 {
		return cw.status
	}
	if err == nil {
		return http.StatusOK
	}
	var coded interface{ StatusCode() int }
	if errors.As(err, &coded) {
		return coded.StatusCode()
	}
	return http.StatusInternalServerError
}
