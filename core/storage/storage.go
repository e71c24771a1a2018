package storage

import "context"

// Storage is a flat collection of named text documents.
//
// Names are single path segments accepted by ValidateName. Every mutation
// is complete and visible to the next call when the method returns; there is
// no buffering across calls. Concurrent writes to the same name are resolved
// by the last writer.
type Storage interface {
	// List returns the names of all documents, sorted lexically.
	List(ctx context.Context) ([]string, error)
	// Exists reports whether a document with the given name exists.
	Exists(ctx context.Context, name string) (bool, error)
	// Read returns the full content of a document or ErrNotFound.
	Read(ctx context.Context, name string) ([]byte, error)
	// Write replaces the content of a document, creating it when absent.
	Write(ctx context.Context, name string, content []byte) error
	// Create stores a new document and fails with ErrAlreadyExists when the
	// name is taken.
	Create(ctx context.Context, name string, content []byte) error
	// Delete removes a document or fails with ErrNotFound.
	Delete(ctx context.Context, name string) error
	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
}
