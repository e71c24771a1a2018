package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"
)

// MaxCookieSize is the default limit for one serialized Set-Cookie value.
const MaxCookieSize = 4096

const minSecretLength = 32

// Manager writes and reads cookies with shared attributes and verifies
// HMAC-SHA256 signatures.
type Manager struct {
	keys     [][]byte // keys[0] signs; every key verifies
	defaults Options
	maxSize  int
}

// New returns a Manager. Blank secrets are dropped; the rest must be at
// least 32 characters. Listing an old secret after the new one keeps
// existing cookies valid during rotation.
//
// Cookies default to Path "/", HttpOnly and SameSite=Lax.
func New(secrets []string, opts ...Option) (*Manager, error) {
	var keys [][]byte
	for i, s := range secrets {
		if s = strings.TrimSpace(s); s == "" {
			continue
		}
		if len(s) < minSecretLength {
			return nil, fmt.Errorf("%w: secret #%d is %d chars", ErrSecretTooShort, i, len(s))
		}
		keys = append(keys, []byte(s))
	}
	if len(keys) == 0 {
		return nil, ErrNoSecret
	}

	base := Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode}
	return &Manager{keys: keys, defaults: base.with(opts), maxSize: MaxCookieSize}, nil
}

// Set writes a plain cookie. It fails with ErrCookieTooLarge rather than
// letting the browser silently drop an oversized one.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	c := m.defaults.with(opts).cookie(name, value)
	if n := len(c.String()); n > m.maxSize {
		return ErrCookieTooLarge{Name: name, Size: n, Max: m.maxSize}
	}
	http.SetCookie(w, c)
	return nil
}

// Get reads a plain cookie. A missing one is ErrCookieNotFound.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if errors.Is(err, http.ErrNoCookie) {
		return "", ErrCookieNotFound
	}
	if err != nil {
		return "", err
	}
	return c.Value, nil
}

// Delete expires the cookie using the manager's attributes.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	c := m.defaults.cookie(name, "")
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	http.SetCookie(w, c)
}

// SetSigned writes value as "base64(value)|base64(hmac)".
func (m *Manager) SetSigned(w http.ResponseWriter, name, value string, opts ...Option) error {
	raw := []byte(value)
	signed := base64.URLEncoding.EncodeToString(raw) + "|" + base64.URLEncoding.EncodeToString(sum(m.keys[0], raw))
	return m.Set(w, name, signed, opts...)
}

// GetSigned reads a cookie written by SetSigned and checks it against
// every configured secret.
func (m *Manager) GetSigned(r *http.Request, name string) (string, error) {
	signed, err := m.Get(r, name)
	if err != nil {
		return "", err
	}

	encValue, encMAC, ok := strings.Cut(signed, "|")
	if !ok {
		return "", ErrInvalidFormat
	}
	value, err := base64.URLEncoding.DecodeString(encValue)
	if err != nil {
		return "", ErrInvalidFormat
	}
	got, err := base64.URLEncoding.DecodeString(encMAC)
	if err != nil {
		return "", ErrInvalidSignature
	}

	if !slices.ContainsFunc(m.keys, func(key []byte) bool { return hmac.Equal(got, sum(key, value)) }) {
		return "", ErrInvalidSignature
	}
	return string(value), nil
}

func sum(key, value []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(value)
	return h.Sum(nil)
}
