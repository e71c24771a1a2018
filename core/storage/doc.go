// Package storage is the document store: a flat collection of named text
// documents behind the Storage interface.
//
// Two backends live here: Local keeps each document as a regular file
// directly under a root directory, Memory keeps them in a map. An S3
// backend lives in integration/storage/s3.
//
//	store, err := storage.NewLocal(cfg.Root)
//	if err != nil {
//		return err
//	}
//	if err := store.Create(ctx, "notes.md", nil); errors.Is(err, storage.ErrAlreadyExists) {
//		// name taken
//	}
//
// Error kinds:
//
//   - ErrNotFound: Read or Delete of a missing document.
//   - ErrAlreadyExists: Create of a taken name.
//   - ErrInvalidName: a name rejected by ValidateName. Names are single path
//     segments of [A-Za-z0-9._-] that do not start with a dot, so no name can
//     address anything outside the root.
//   - ErrStorage: any unexpected backend failure, wrapped in *Error.
//
// Local writes are atomic (temp file + rename in the root directory), and
// every operation completes before it returns.
package storage
