package binder

import "errors"

var (
	// ErrMissingContentType: the request has a body but no Content-Type.
	ErrMissingContentType = errors.New("binder: missing content type")
	// ErrUnsupportedMediaType: the body is neither urlencoded nor multipart.
	ErrUnsupportedMediaType = errors.New("binder: unsupported media type")
	// ErrFailedToParseForm covers malformed bodies, bad multipart boundaries
	// and values that do not convert to the field's type.
	ErrFailedToParseForm = errors.New("binder: cannot parse form")
)
