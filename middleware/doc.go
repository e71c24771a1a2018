// Package middleware provides HTTP middleware for handler.Context based routers.
//
// Every middleware follows the same shape: a generic default constructor, a
// WithConfig variant taking a Config struct, an optional Skip func, and context
// helpers for values it stores.
//
//	r := router.New[*MyContext]()
//	r.Use(
//		middleware.RequestID[*MyContext](),
//		middleware.LoggingWithLogger[*MyContext](log),
//		middleware.SecurityHeaders[*MyContext](),
//		middleware.BodyLimitWithSize[*MyContext](4*middleware.MB),
//		middleware.Session[*MyContext, SessionData](transport),
//	)
//	r.With(middleware.RequireAuth[*MyContext, SessionData](deny)).Post("/admin", h)
//
// Available middleware:
//
//   - RequestID: assigns an ID per request, exposed via GetRequestID and the X-Request-ID header.
//   - Logging: one structured slog record per request with status, size and duration.
//   - SecurityHeaders: CSP, frame, HSTS and related headers from a preset or custom config.
//   - BodyLimit: rejects or truncates oversized request bodies with 413.
//   - Session: loads the session before the handler and stores it afterwards.
//   - RequireAuth: lets only authenticated sessions through.
//   - RateLimit: token bucket per client IP, 429 with Retry-After once exhausted.
package middleware
