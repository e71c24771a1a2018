// Package cookie manages HTTP cookies with HMAC-SHA256 signatures.
//
//	m, err := cookie.NewFromConfig(cfg) // COOKIE_SECRETS=...,...
//	if err != nil {
//		return err
//	}
//	_ = m.SetSigned(w, "__session", token, cookie.WithMaxAge(86400))
//	token, err := m.GetSigned(r, "__session")
//
// Signed values have the form base64(value)|base64(hmac). The first secret
// signs; every configured secret verifies, so a new secret can be put in
// front while old cookies stay valid. Secrets must be at least 32 characters.
//
// Defaults are Path=/, HttpOnly and SameSite=Lax.
package cookie
