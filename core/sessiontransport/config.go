package sessiontransport

import (
	"github.com/dmitrymomot/doccms/core/cookie"
	"github.com/dmitrymomot/doccms/core/session"
)

const defaultCookieName = "__session"

// CookieConfig names the session cookie, from SESSION_COOKIE_NAME.
type CookieConfig struct {
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"__session"`
}

// DefaultCookieConfig is the config used when nothing is set.
func DefaultCookieConfig() CookieConfig {
	return CookieConfig{CookieName: defaultCookieName}
}

// NewCookieFromConfig wires mgr and cookieMgr into a Cookie transport.
// An empty CookieName falls back to "__session".
func NewCookieFromConfig[Data any](cfg CookieConfig, mgr *session.Manager[Data], cookieMgr *cookie.Manager) *Cookie[Data] {
	name := cfg.CookieName
	if name == "" {
		name = defaultCookieName
	}
	return NewCookie(mgr, cookieMgr, name)
}
