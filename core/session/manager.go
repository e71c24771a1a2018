package session

import (
	"context"
	"errors"
	"time"
)

// Manager handles session lifecycle including creation, retrieval, and expiration.
// The touch interval determines how often sessions are automatically extended on access,
// reducing write operations to the store.
type Manager[Data any] struct {
	store  Store[Data]
	config Config
}

// NewManager creates a session manager backed by store.
func NewManager[Data any](store Store[Data], opts ...Option) *Manager[Data] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Manager[Data]{
		store:  store,
		config: cfg,
	}
}

// New creates a fresh anonymous session. It is persisted on the first Store call.
func (m *Manager[Data]) New(_ context.Context, params NewSessionParams) (Session[Data], error) {
	return New[Data](params, m.config.TTL)
}

// GetByToken retrieves a session by token and validates expiration.
// Expired sessions are removed from the store.
func (m *Manager[Data]) GetByToken(ctx context.Context, token string) (Session[Data], error) {
	session, err := m.store.GetByToken(ctx, token)
	if err != nil {
		return Session[Data]{}, err
	}

	if session.IsExpired() {
		if err := m.store.Delete(ctx, token); err != nil && !errors.Is(err, ErrNotFound) {
			return Session[Data]{}, errors.Join(ErrExpired, ErrDeleteSession, err)
		}
		return Session[Data]{}, ErrExpired
	}

	return *session, nil
}

// Store persists the session when it was modified or is due for a touch.
// A token replaced during the request is removed from the store.
// Reports whether the session was written.
func (m *Manager[Data]) Store(ctx context.Context, sess Session[Data]) (bool, error) {
	sess.Touch(m.config.TTL, m.config.TouchInterval)

	if !sess.IsModified() {
		return false, nil
	}

	if sess.oldToken != "" && sess.oldToken != sess.Token {
		if err := m.store.Delete(ctx, sess.oldToken); err != nil && !errors.Is(err, ErrNotFound) {
			return false, errors.Join(ErrDeleteSession, err)
		}
	}

	sess.oldToken = ""
	sess.dirty = false
	if err := m.store.Save(ctx, &sess); err != nil {
		return false, errors.Join(ErrSaveSession, err)
	}
	return true, nil
}

// Delete removes the session from the store.
func (m *Manager[Data]) Delete(ctx context.Context, sess Session[Data]) error {
	if err := m.store.Delete(ctx, sess.Token); err != nil && !errors.Is(err, ErrNotFound) {
		return errors.Join(ErrDeleteSession, err)
	}
	return nil
}

// CleanupExpired removes all expired sessions from the store.
// Should be called periodically to prevent unbounded store growth.
func (m *Manager[Data]) CleanupExpired(ctx context.Context) (int64, error) {
	return m.store.DeleteExpired(ctx)
}

// TTL returns the session time-to-live duration.
func (m *Manager[Data]) TTL() time.Duration {
	return m.config.TTL
}
