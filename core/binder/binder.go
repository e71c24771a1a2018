package binder

import "net/http"

// Binder decodes r into v, which must point to a struct.
type Binder func(r *http.Request, v any) error
