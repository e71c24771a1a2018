package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/google/uuid"
)

// tokenBytes is the entropy of a session token before encoding.
const tokenBytes = 32

// Session is one visitor's server-side state. Data carries the
// application's own payload.
//
// ID stays fixed for the lifetime of the session. Token is the bearer
// secret sent in the cookie and the key in the Store; it changes whenever
// the privilege level does.
type Session[Data any] struct {
	ID        uuid.UUID
	Token     string
	UserID    string // empty while anonymous
	IP        string
	UserAgent string
	Data      Data

	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	dirty    bool
	oldToken string // token the store still holds after a rotation
}

// NewSessionParams describes the client a new session is started for.
type NewSessionParams struct {
	IP        string
	UserAgent string
}

// New starts an anonymous session that expires after ttl. The result is
// dirty, so the first Manager.Store persists it.
func New[Data any](params NewSessionParams, ttl time.Duration) (Session[Data], error) {
	token, err := newToken()
	if err != nil {
		return Session[Data]{}, err
	}

	now := time.Now()
	return Session[Data]{
		ID:        uuid.New(),
		Token:     token,
		IP:        params.IP,
		UserAgent: params.UserAgent,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
		UpdatedAt: now,
		dirty:     true,
	}, nil
}

// Authenticate binds the session to userID under a fresh token. When data
// is given, its first element replaces Data.
func (s *Session[Data]) Authenticate(userID string, data ...Data) error {
	if userID == "" {
		return ErrNotAuthenticated
	}
	if err := s.rotate(); err != nil {
		return err
	}
	s.UserID = userID
	if len(data) > 0 {
		s.Data = data[0]
	}
	return nil
}

// Refresh issues a new token and leaves everything else alone.
func (s *Session[Data]) Refresh() error {
	return s.rotate()
}

// Logout drops the user and the data and rotates the token. The session
// stays alive as an anonymous one, so a flash set afterwards still reaches
// the next request.
func (s *Session[Data]) Logout() error {
	if err := s.rotate(); err != nil {
		return err
	}
	s.UserID = ""
	var zero Data
	s.Data = zero
	return nil
}

// SetData replaces Data and marks the session for saving.
func (s *Session[Data]) SetData(data Data) {
	s.Data = data
	s.markDirty(time.Now())
}

// Touch pushes ExpiresAt to now+ttl, but only once every interval so an
// active visitor does not cost a store write per request.
func (s *Session[Data]) Touch(ttl, interval time.Duration) {
	now := time.Now()
	if now.Sub(s.UpdatedAt) < interval {
		return
	}
	s.ExpiresAt = now.Add(ttl)
	s.markDirty(now)
}

// IsAuthenticated reports whether a user is signed in on this session.
func (s Session[Data]) IsAuthenticated() bool {
	return s.UserID != "" && s.Token != ""
}

// IsModified reports whether the session has unsaved changes.
func (s Session[Data]) IsModified() bool { return s.dirty }

// IsExpired reports whether ExpiresAt has passed.
func (s Session[Data]) IsExpired() bool { return time.Now().After(s.ExpiresAt) }

func (s *Session[Data]) markDirty(now time.Time) {
	s.UpdatedAt = now
	s.dirty = true
}

// rotate swaps in a new token. Across several rotations in one request
// only the first token is kept as oldToken, since that is what the store has.
func (s *Session[Data]) rotate() error {
	token, err := newToken()
	if err != nil {
		return err
	}
	if s.oldToken == "" {
		s.oldToken = s.Token
	}
	s.Token = token
	s.markDirty(time.Now())
	return nil
}

func newToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
