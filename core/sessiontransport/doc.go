// Package sessiontransport carries session tokens over HTTP.
//
// Cookie stores the session token in an HMAC-signed cookie and resolves it
// through a session.Manager. Load never fails the request for a missing,
// tampered or expired cookie: it hands back a fresh anonymous session instead.
// Store writes the session and refreshes the cookie only when the session
// changed or was touched.
//
//	transport := sessiontransport.NewCookie(sessionMgr, cookieMgr, "__session")
//	r.Use(middleware.Session[*cms.Context, cms.SessionData](transport))
package sessiontransport
