package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/doccms/core/handler"
)

// Dispatch failures passed to the error handler.
var (
	ErrNotFound         = errors.New("router: no route")
	ErrMethodNotAllowed = errors.New("router: method not allowed")
	ErrNilResponse      = errors.New("router: handler returned nil response")
)

// Registration failures. They are raised as panics while routes are wired.
var (
	ErrNoContextFactory = errors.New("router: no context factory")
	ErrInvalidMethod    = errors.New("router: invalid http method")
	ErrNilSubrouter     = errors.New("router: nil subrouter")
	ErrInvalidPattern   = errors.New("router: invalid pattern")
)

// PanicError carries a panic recovered while serving a request.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string { return fmt.Sprintf("panic: %v", e.Value) }

// Unwrap exposes a panicked error value to errors.Is and errors.As.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// defaultErrorHandler answers with a plain-text status page unless output
// has already started.
func defaultErrorHandler[C handler.Context](ctx C, err error) {
	w := ctx.ResponseWriter()
	if sw, ok := w.(*statusWriter); ok && sw.Written() {
		return
	}
	status := statusFor(err)
	http.Error(w, http.StatusText(status), status)
}

func statusFor(err error) int {
	var coded interface{ StatusCode() int }
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &coded):
		return coded.StatusCode()
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed
	}
	return http.StatusInternalServerError
}
