package server

import "errors"

// Configuration errors.
var (
	ErrMissingAddress = errors.New("server: empty listen address")
	ErrEmptyCertPath  = errors.New("server: TLS needs both cert and key file")
	ErrFailedLoadCert = errors.New("server: loading TLS key pair")
)

// Lifecycle errors. Underlying net/http errors are joined onto them.
var (
	ErrServerAlreadyRunning = errors.New("server: already running")
	ErrHTTPServer           = errors.New("server: serve")
	ErrHTTPShutdown         = errors.New("server: shutdown")
)
