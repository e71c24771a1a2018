package router

import "net/http"

// statusWriter records the first status sent and drops any later
// WriteHeader, so the error handler can tell whether output has started.
type statusWriter struct {
	http.ResponseWriter
	status int // zero until headers are sent
}

func newResponseWriter(w http.ResponseWriter) *statusWriter {
	return &statusWriter{ResponseWriter: w}
}

func (w *statusWriter) WriteHeader(status int) {
	if w.status != 0 {
		return
	}
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.WriteHeader(http.StatusOK)
	return w.ResponseWriter.Write(b)
}

// Written reports whether headers went out.
func (w *statusWriter) Written() bool { return w.status != 0 }

// Status is the code sent, or zero.
func (w *statusWriter) Status() int { return w.status }

func (w *statusWriter) Flush() {
	_ = http.NewResponseController(w.ResponseWriter).Flush()
}

// Unwrap exposes the wrapped writer to http.ResponseController.
func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
