package middleware

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/doccms/core/handler"
	"github.com/dmitrymomot/doccms/core/logger"
	"github.com/dmitrymomot/doccms/core/response"
	"github.com/dmitrymomot/doccms/core/session"
)

type sessionKey struct{}

// SessionTransport loads and stores sessions for a request.
type SessionTransport[Data any] interface {
	Load(handler.Context) (session.Session[Data], error)
	Store(handler.Context, session.Session[Data]) error
}

// SessionConfig configures the session middleware.
type SessionConfig[C handler.Context, Data any] struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx C) bool
	// Transport implements Load and Store methods for session management
	Transport SessionTransport[Data]
	// Logger for structured logging (default: slog with io.Discard)
	Logger *slog.Logger
	// ErrorHandler renders the response when the session cannot be stored
	// Default: response.Error(err)
	ErrorHandler func(ctx C, err error) handler.Response
}

// Session creates middleware that loads the session from transport, stores it in
// context and stores it again after the handler chain has run.
//
//	r.Use(middleware.Session[*MyContext, MySessionData](transport))
//
// Handlers read the session with GetSession and write it back with SetSession.
// The session is stored before the response renders, so cookies set by the
// transport reach the client together with redirects.
func Session[C handler.Context, Data any](transport SessionTransport[Data]) handler.Middleware[C] {
	return SessionWithConfig(SessionConfig[C, Data]{
		Transport: transport,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

// SessionWithConfig creates a session middleware with custom configuration.
//
// Load failures degrade gracefully: the error is logged and the request continues
// with whatever session the transport handed back (a fresh anonymous one for the
// cookie transport). Store failures are logged and rendered through ErrorHandler.
func SessionWithConfig[C handler.Context, Data any](cfg SessionConfig[C, Data]) handler.Middleware[C] {
	if cfg.Transport == nil {
		panic("session middleware: transport is required")
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(_ C, err error) handler.Response {
			return response.Error(err)
		}
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			sess, err := cfg.Transport.Load(ctx)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return response.Error(ctxErr)
				}
				cfg.Logger.ErrorContext(ctx, "failed to load session",
					logger.Component("session"),
					logger.Error(err),
				)
			}

			ctx.SetValue(sessionKey{}, sess)

			resp := next(ctx)

			// Get current session (handler may have replaced it)
			currentSess, ok := GetSession[Data](ctx)
			if !ok || currentSess.Token == "" {
				return resp
			}

			if err := cfg.Transport.Store(ctx, currentSess); err != nil {
				cfg.Logger.ErrorContext(ctx, "failed to store session",
					logger.Component("session"),
					logger.Error(err),
				)
				return cfg.ErrorHandler(ctx, err)
			}

			return resp
		}
	}
}

// RequireAuth lets only requests with an authenticated session through.
// Others get the deny response (default: 401). Mount it after Session so
// changes deny makes to the session are still stored.
func RequireAuth[C handler.Context, Data any](deny func(ctx C) handler.Response) handler.Middleware[C] {
	if deny == nil {
		deny = func(C) handler.Response {
			return response.Error(response.ErrUnauthorized)
		}
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if sess, ok := GetSession[Data](ctx); ok && sess.IsAuthenticated() {
				return next(ctx)
			}
			return deny(ctx)
		}
	}
}

// GetSession retrieves session from context.
// Returns the session and true if found, empty session and false otherwise.
func GetSession[Data any](ctx handler.Context) (session.Session[Data], bool) {
	if ctx == nil {
		return session.Session[Data]{}, false
	}

	if sess, ok := ctx.Value(sessionKey{}).(session.Session[Data]); ok {
		return sess, true
	}

	return session.Session[Data]{}, false
}

// MustGetSession retrieves session from context or panics if not found.
// Use this when session existence is guaranteed by middleware.
func MustGetSession[Data any](ctx handler.Context) session.Session[Data] {
	sess, ok := GetSession[Data](ctx)
	if !ok {
		panic("session not found in context")
	}
	return sess
}

// SetSession updates session in context.
// Use this to store modified session state during request processing.
func SetSession[Data any](ctx handler.Context, sess session.Session[Data]) {
	ctx.SetValue(sessionKey{}, sess)
}
