package cms

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/doccms/core/logger"
	"github.com/dmitrymomot/doccms/core/response"
	"github.com/dmitrymomot/doccms/core/router"
)

// handleError renders the error page. Server errors show a generic message;
// the cause only goes to the log.
func (a *App) handleError(ctx *Context, err error) {
	if w, ok := ctx.ResponseWriter().(interface{ Written() bool }); ok && w.Written() {
		return
	}

	var status int
	switch {
	case errors.Is(err, router.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, router.ErrMethodNotAllowed):
		status = http.StatusMethodNotAllowed
	default:
		status = response.AsHTTPError(err).Status
	}

	attrs := []any{
		logger.Component("cms"),
		logger.Method(ctx.Request().Method),
		logger.Path(ctx.Request().URL.Path),
		logger.StatusCode(status),
		logger.Error(err),
	}
	var panicErr *router.PanicError
	if errors.As(err, &panicErr) {
		attrs = append(attrs, slog.String("stack", string(panicErr.Stack)))
	}
	if status >= http.StatusInternalServerError {
		a.logger.ErrorContext(ctx, "request failed", attrs...)
	} else {
		a.logger.DebugContext(ctx, "request rejected", attrs...)
	}

	data := pageData{
		AppName:  a.config.AppName,
		Title:    http.StatusText(status),
		Status:   status,
		Message:  errorMessage(status),
		SignedIn: ctx.IsSignedIn(),
		Username: ctx.Username(),
	}
	response.Render(ctx, response.NoStore(response.TemplateWithStatus(a.pages["error"], data, status)))
}

func errorMessage(status int) string {
	switch status {
	case http.StatusNotFound:
		return "The page you are looking for does not exist."
	case http.StatusMethodNotAllowed:
		return "This action is not supported here."
	case http.StatusRequestEntityTooLarge:
		return "The submitted content is too large."
	case http.StatusBadRequest, http.StatusUnsupportedMediaType:
		return "The request could not be understood."
	case http.StatusTooManyRequests:
		return "Too many attempts. Please wait and try again."
	case http.StatusServiceUnavailable:
		return "The service is temporarily unavailable."
	default:
		if status >= http.StatusInternalServerError {
			return "Something went wrong. Please try again later."
		}
		return http.StatusText(status)
	}
}

// logEvent logs a successful mutation with the acting user.
func (a *App) logEvent(ctx *Context, event string, attrs ...slog.Attr) {
	args := []any{
		logger.Component("cms"),
		logger.Event(event),
		logger.Username(ctx.Username()),
	}
	for _, attr := range attrs {
		args = append(args, attr)
	}
	a.logger.InfoContext(ctx, event, args...)
}
