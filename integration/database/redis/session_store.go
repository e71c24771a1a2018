package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/doccms/core/session"
)

// Client is the subset of go-redis commands used by SessionStore.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

var _ session.Store[struct{}] = (*SessionStore[struct{}])(nil)

// SessionStore keeps sessions as JSON values keyed by prefix + token.
// Keys expire with the session, so DeleteExpired has nothing to do.
type SessionStore[Data any] struct {
	client Client
	prefix string
}

// NewSessionStore creates a Redis-backed session store.
// An empty prefix defaults to "session:".
func NewSessionStore[Data any](client Client, prefix string) *SessionStore[Data] {
	if prefix == "" {
		prefix = "session:"
	}
	return &SessionStore[Data]{client: client, prefix: prefix}
}

func (s *SessionStore[Data]) GetByToken(ctx context.Context, token string) (*session.Session[Data], error) {
	raw, err := s.client.Get(ctx, s.prefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, session.ErrNotFound
		}
		return nil, err
	}

	var sess session.Session[Data]
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, errors.Join(ErrDecodeSession, err)
	}
	return &sess, nil
}

// Save writes the session with a TTL matching its expiry.
// An already expired session is removed instead.
func (s *SessionStore[Data]) Save(ctx context.Context, sess *session.Session[Data]) error {
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return s.client.Del(ctx, s.prefix+sess.Token).Err()
	}

	raw, err := json.Marshal(sess)
	if err != nil {
		return errors.Join(ErrEncodeSession, err)
	}
	return s.client.Set(ctx, s.prefix+sess.Token, raw, ttl).Err()
}

func (s *SessionStore[Data]) Delete(ctx context.Context, token string) error {
	n, err := s.client.Del(ctx, s.prefix+token).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return session.ErrNotFound
	}
	return nil
}

func (s *SessionStore[Data]) DeleteExpired(context.Context) (int64, error) {
	return 0, nil
}
