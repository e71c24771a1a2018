package storage

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("document not found")
	ErrAlreadyExists = errors.New("document already exists")
	ErrInvalidName   = errors.New("invalid document name")
	// ErrStorage marks unexpected backend failures (permissions, full disk,
	// network). Match it with errors.Is; the concrete error is an *Error.
	ErrStorage = errors.New("storage failure")
)

// Error describes a backend failure for a single operation.
type Error struct {
	Op   string
	Name string
	Err  error
}

func (e *Error) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage: %s %s: %v", e.Op, e.Name, e.Err)
}

// Unwrap exposes both ErrStorage and the underlying cause.
func (e *Error) Unwrap() []error {
	return []error{ErrStorage, e.Err}
}

// Fail wraps err as a backend failure of op on name.
// Backends outside this package use it so callers can rely on ErrStorage.
func Fail(op, name string, err error) error {
	return &Error{Op: op, Name: name, Err: err}
}
