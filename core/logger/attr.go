package logger

import (
	"log/slog"
	"time"
)

// Helpers that take optional input return the zero Attr for it, which slog
// drops, so call sites can pass logger.Error(err) without a nil check.

func optional(key, value string) slog.Attr {
	if value == "" {
		return slog.Attr{}
	}
	return slog.String(key, value)
}

// Error is the "error" attribute, or nothing for a nil error.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Key is an arbitrary attribute, or nothing for a nil value.
func Key(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any(key, value)
}

// Group nests attrs under name.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Count is an integer attribute under key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Duration is the elapsed time of an operation.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component names the subsystem that logs.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event is a dotted event name such as "auth.failed".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Document is a document name.
func Document(name string) slog.Attr {
	return slog.String("document", name)
}

// Method is the HTTP request method.
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// Path is the request URL path.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// StatusCode is the HTTP response status.
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// RequestID is omitted when empty.
func RequestID(id string) slog.Attr {
	return optional("request_id", id)
}

// ClientIP is omitted when empty.
func ClientIP(ip string) slog.Attr {
	return optional("client_ip", ip)
}

// UserAgent is omitted when empty.
func UserAgent(ua string) slog.Attr {
	return optional("user_agent", ua)
}

// Username is the signed-in user's name. Never pass credentials here.
func Username(name string) slog.Attr {
	return optional("username", name)
}
