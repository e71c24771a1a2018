package session

import "errors"

// Lookup failures. The sessiontransport package treats both as "start a fresh session".
var (
	ErrNotFound = errors.New("session: unknown token")
	ErrExpired  = errors.New("session: expired")
)

// Mutation failures. Store errors are joined onto these, so callers can match
// either the sentinel or the backend error.
var (
	ErrNotAuthenticated = errors.New("session: empty user id")
	ErrTokenGeneration  = errors.New("session: token generation")
	ErrSaveSession      = errors.New("session: save")
	ErrDeleteSession    = errors.New("session: delete")
)
