package session

import "context"

// Store persists sessions by token. It is shared across requests, so
// implementations must be safe for concurrent use.
type Store[Data any] interface {
	// GetByToken reports ErrNotFound for an unknown token. Expiry is checked
	// by the Manager, not the store.
	GetByToken(ctx context.Context, token string) (*Session[Data], error)
	Save(ctx context.Context, sess *Session[Data]) error
	Delete(ctx context.Context, token string) error
	// DeleteExpired purges sessions past ExpiresAt and reports how many went.
	DeleteExpired(ctx context.Context) (int64, error)
}
