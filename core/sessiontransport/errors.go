package sessiontransport

import "errors"

var (
	// ErrLoadSession is returned when the session store cannot be read.
	ErrLoadSession = errors.New("sessiontransport: failed to load session")

	// ErrStoreSession is returned when the session cookie cannot be written.
	ErrStoreSession = errors.New("sessiontransport: failed to store session")
)
