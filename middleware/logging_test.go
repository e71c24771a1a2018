package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/doccms/core/handler"
	"github.com/dmitrymomot/doccms/core/response"
	"github.com/dmitrymomot/doccms/core/router"
	"github.com/dmitrymomot/doccms/middleware"
)

func newJSONLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &rec))
	return rec
}

func TestLogging(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		h         handler.HandlerFunc[*router.Context]
		wantLevel string
		wantCode  float64
	}{
		{
			name:      "success",
			h:         func(*router.Context) handler.Response { return response.String("hello") },
			wantLevel: "INFO",
			wantCode:  200,
		},
		{
			name:      "client error",
			h:         func(*router.Context) handler.Response { return response.Error(response.ErrNotFound) },
			wantLevel: "WARN",
			wantCode:  404,
		},
		{
			name:      "server error",
			h:         func(*router.Context) handler.Response { return response.Error(errors.New("boom")) },
			wantLevel: "ERROR",
			wantCode:  500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			r := router.New[*router.Context]()
			r.Use(middleware.RequestID[*router.Context]())
			r.Use(middleware.LoggingWithLogger[*router.Context](newJSONLogger(&buf)))
			r.Get("/x", tt.h)

			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			req.RemoteAddr = "192.0.2.7:999"
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			rec := lastRecord(t, &buf)
			assert.Equal(t, tt.wantLevel, rec["level"])
			assert.Equal(t, "HTTP request completed", rec["msg"])
			assert.Equal(t, tt.wantCode, rec["status_code"])
			assert.Equal(t, "GET", rec["method"])
			assert.Equal(t, "/x", rec["path"])
			assert.Equal(t, "192.0.2.7", rec["client_ip"])
			assert.Equal(t, w.Header().Get("X-Request-ID"), rec["request_id"])
			assert.Equal(t, "http", rec["component"])
		})
	}
}

func TestLoggingBytesOut(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := router.New[*router.Context]()
	r.Use(middleware.LoggingWithConfig[*router.Context](middleware.LoggingConfig{
		Logger:    newJSONLogger(&buf),
		Component: "web",
	}))
	r.Get("/x", func(*router.Context) handler.Response { return response.String("12345") })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

	rec := lastRecord(t, &buf)
	assert.Equal(t, float64(5), rec["bytes_out"])
	assert.Equal(t, "web", rec["component"])
}

func TestLoggingSkip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := router.New[*router.Context]()
	r.Use(middleware.LoggingWithConfig[*router.Context](middleware.LoggingConfig{
		Logger: newJSONLogger(&buf),
		Skip:   func(ctx handler.Context) bool { return ctx.Request().URL.Path == "/quiet" },
	}))
	r.Get("/quiet", func(*router.Context) handler.Response { return response.NoContent() })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/quiet", nil))
	assert.Zero(t, buf.Len())
}
