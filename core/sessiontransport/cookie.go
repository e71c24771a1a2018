package sessiontransport

import (
	"errors"

	"github.com/dmitrymomot/doccms/core/cookie"
	"github.com/dmitrymomot/doccms/core/handler"
	"github.com/dmitrymomot/doccms/core/session"
	"github.com/dmitrymomot/doccms/pkg/clientip"
)

// Cookie provides HTTP cookie-based session transport.
// It stores Session.Token as the cookie value (signed via cookie.Manager).
type Cookie[Data any] struct {
	manager   *session.Manager[Data]
	cookieMgr *cookie.Manager
	name      string
}

// NewCookie creates a new cookie-based session transport.
func NewCookie[Data any](mgr *session.Manager[Data], cookieMgr *cookie.Manager, name string) *Cookie[Data] {
	return &Cookie[Data]{
		manager:   mgr,
		cookieMgr: cookieMgr,
		name:      name,
	}
}

// Name returns the session cookie name.
func (c *Cookie[Data]) Name() string {
	return c.name
}

// Load session from cookie. Creates new anonymous session if no cookie or invalid.
// A store failure is returned together with a fresh session, so callers may
// log it and carry on.
func (c *Cookie[Data]) Load(ctx handler.Context) (session.Session[Data], error) {
	token, err := c.cookieMgr.GetSigned(ctx.Request(), c.name)
	if err != nil {
		return c.newSession(ctx)
	}

	sess, err := c.manager.GetByToken(ctx, token)
	if err == nil {
		return sess, nil
	}

	fresh, newErr := c.newSession(ctx)
	if newErr != nil {
		return fresh, newErr
	}
	if errors.Is(err, session.ErrNotFound) || errors.Is(err, session.ErrExpired) {
		return fresh, nil
	}
	return fresh, errors.Join(ErrLoadSession, err)
}

// Store persists the session and refreshes the cookie whenever the session was written.
func (c *Cookie[Data]) Store(ctx handler.Context, sess session.Session[Data]) error {
	saved, err := c.manager.Store(ctx, sess)
	if err != nil {
		return err
	}
	if !saved {
		return nil
	}

	// The server-side expiry is authoritative; the cookie just needs to outlive it.
	maxAge := int(c.manager.TTL().Seconds())
	if err := c.cookieMgr.SetSigned(ctx.ResponseWriter(), c.name, sess.Token, cookie.WithMaxAge(maxAge)); err != nil {
		return errors.Join(ErrStoreSession, err)
	}
	return nil
}

// Delete removes the session from the store and expires the cookie.
func (c *Cookie[Data]) Delete(ctx handler.Context, sess session.Session[Data]) error {
	if err := c.manager.Delete(ctx, sess); err != nil {
		return err
	}
	c.cookieMgr.Delete(ctx.ResponseWriter(), c.name)
	return nil
}

func (c *Cookie[Data]) newSession(ctx handler.Context) (session.Session[Data], error) {
	return c.manager.New(ctx, session.NewSessionParams{
		IP:        clientip.GetIP(ctx.Request()),
		UserAgent: ctx.Request().UserAgent(),
	})
}
