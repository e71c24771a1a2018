package cms

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/doccms/core/binder"
	"github.com/dmitrymomot/doccms/core/response"
	"github.com/dmitrymomot/doccms/core/router"
	"github.com/dmitrymomot/doccms/middleware"
)

// SessionData is the application part of a session.
// The signed-in username is the session's UserID.
type SessionData struct {
	Flash string `json:"flash,omitempty"`
}

// Context is the request context handlers receive. It adds session helpers
// on top of the default router context.
type Context struct {
	*router.Context
}

func newContext(w http.ResponseWriter, r *http.Request, params map[string]string) *Context {
	return &Context{Context: router.NewContext(w, r, params)}
}

// IsSignedIn reports whether the session holds a username.
func (c *Context) IsSignedIn() bool {
	sess, ok := middleware.GetSession[SessionData](c)
	return ok && sess.IsAuthenticated()
}

// Username returns the signed-in username, or "" for anonymous visitors.
func (c *Context) Username() string {
	sess, ok := middleware.GetSession[SessionData](c)
	if !ok {
		return ""
	}
	return sess.UserID
}

// SignIn stores username in the session and rotates the session token.
// A pending flash message is kept.
func (c *Context) SignIn(username string) error {
	sess := middleware.MustGetSession[SessionData](c)
	if err := sess.Authenticate(username, sess.Data); err != nil {
		return err
	}
	middleware.SetSession(c, sess)
	return nil
}

// SignOut clears the username and rotates the session token.
// The session itself stays, so a flash set afterwards survives the redirect.
func (c *Context) SignOut() error {
	sess := middleware.MustGetSession[SessionData](c)
	if err := sess.Logout(); err != nil {
		return err
	}
	middleware.SetSession(c, sess)
	return nil
}

// SetFlash replaces the one-shot message shown on the next rendered page.
func (c *Context) SetFlash(message string) {
	sess, ok := middleware.GetSession[SessionData](c)
	if !ok {
		return
	}
	data := sess.Data
	data.Flash = message
	sess.SetData(data)
	middleware.SetSession(c, sess)
}

// TakeFlash returns the pending flash message and clears it.
func (c *Context) TakeFlash() string {
	sess, ok := middleware.GetSession[SessionData](c)
	if !ok || sess.Data.Flash == "" {
		return ""
	}
	message := sess.Data.Flash
	data := sess.Data
	data.Flash = ""
	sess.SetData(data)
	middleware.SetSession(c, sess)
	return message
}

// Bind decodes the form body into v. Failures come back as HTTP errors.
func (c *Context) Bind(v any) error {
	err := binder.Form()(c.Request(), v)

	var tooLarge *http.MaxBytesError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &tooLarge):
		return err
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		return response.ErrUnsupportedMediaType.WithError(err)
	default:
		return response.ErrBadRequest.WithError(err)
	}
}
