package cookie

import "net/http"

// Options are the attributes written with every cookie.
type Options struct {
	Path     string
	Domain   string
	MaxAge   int
	Secure   bool
	HttpOnly bool
	SameSite http.SameSite
}

// Option overrides Options for one manager or one Set call.
type Option func(*Options)

// WithMaxAge sets max-age in seconds. Negative values expire the cookie.
func WithMaxAge(seconds int) Option {
	return func(o *Options) { o.MaxAge = seconds }
}

// WithSecure restricts the cookie to HTTPS.
func WithSecure(secure bool) Option {
	return func(o *Options) { o.Secure = secure }
}

// WithAttributes replaces path, domain and SameSite in one go. Empty or zero
// values keep the current setting.
func WithAttributes(path, domain string, sameSite http.SameSite) Option {
	return func(o *Options) {
		if path != "" {
			o.Path = path
		}
		if domain != "" {
			o.Domain = domain
		}
		if sameSite != 0 {
			o.SameSite = sameSite
		}
	}
}

func (o Options) with(opts []Option) Options {
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o Options) cookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     o.Path,
		Domain:   o.Domain,
		MaxAge:   o.MaxAge,
		Secure:   o.Secure,
		HttpOnly: o.HttpOnly,
		SameSite: o.SameSite,
	}
}
