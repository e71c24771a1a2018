package health

import (
	"github.com/dmitrymomot/doccms/core/handler"
	"github.com/dmitrymomot/doccms/core/response"
)

// Liveness indicates if the service process is running.
// Always returns "ALIVE" with 200 OK. No dependency checks.
//
//	r.Get("/_health/live", health.Liveness[*myapp.Context])
func Liveness[C handler.Context](C) handler.Response {
	return response.NoStore(response.String("ALIVE"))
}
