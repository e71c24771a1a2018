package middleware

import (
	"net/http"

	"github.com/dmitrymomot/doccms/core/handler"
)

// SecurityHeadersConfig lists the response headers to send. An empty field
// sends nothing for that header.
type SecurityHeadersConfig struct {
	Skip func(ctx handler.Context) bool

	ContentTypeOptions        string
	FrameOptions              string
	StrictTransportSecurity   string
	ContentSecurityPolicy     string
	ReferrerPolicy            string
	PermissionsPolicy         string
	CrossOriginOpenerPolicy   string
	CrossOriginResourcePolicy string
	CustomHeaders             map[string]string

	// IsDevelopment suppresses HSTS so a plain-http localhost is not pinned.
	IsDevelopment bool
}

var (
	// StrictSecurity allows nothing but same-origin resources and no framing.
	StrictSecurity = SecurityHeadersConfig{
		ContentTypeOptions:        "nosniff",
		FrameOptions:              "DENY",
		StrictTransportSecurity:   "max-age=63072000; includeSubDomains; preload",
		ContentSecurityPolicy:     "default-src 'none'; script-src 'self'; style-src 'self'; img-src 'self'; frame-ancestors 'none'; base-uri 'self'; form-action 'self'",
		ReferrerPolicy:            "no-referrer",
		PermissionsPolicy:         "camera=(), geolocation=(), microphone=(), payment=(), usb=()",
		CrossOriginOpenerPolicy:   "same-origin",
		CrossOriginResourcePolicy: "same-origin",
	}

	// BalancedSecurity fits server-rendered pages showing user-written
	// markdown: no scripts, same-origin styles, images from any https host.
	BalancedSecurity = SecurityHeadersConfig{
		ContentTypeOptions:        "nosniff",
		FrameOptions:              "SAMEORIGIN",
		StrictTransportSecurity:   "max-age=31536000; includeSubDomains",
		ContentSecurityPolicy:     "default-src 'self'; script-src 'none'; style-src 'self'; img-src 'self' data: https:; frame-ancestors 'self'; base-uri 'self'; form-action 'self'",
		ReferrerPolicy:            "strict-origin-when-cross-origin",
		PermissionsPolicy:         "camera=(), geolocation=(), microphone=()",
		CrossOriginOpenerPolicy:   "same-origin",
		CrossOriginResourcePolicy: "same-origin",
	}
)

// SecurityHeaders sends BalancedSecurity.
func SecurityHeaders[C handler.Context]() handler.Middleware[C] {
	return SecurityHeadersWithConfig[C](BalancedSecurity)
}

// SecurityHeadersWithConfig sends the headers in cfg. Copy a preset and
// adjust it:
//
//	cfg := middleware.BalancedSecurity
//	cfg.CustomHeaders = map[string]string{"X-Robots-Tag": "noindex"}
//	r.Use(middleware.SecurityHeadersWithConfig[*MyContext](cfg))
//
// The headers are set before the handler runs, so error pages carry them.
func SecurityHeadersWithConfig[C handler.Context](cfg SecurityHeadersConfig) handler.Middleware[C] {
	headers := cfg.header()

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip == nil || !cfg.Skip(ctx) {
				dst := ctx.ResponseWriter().Header()
				for k, v := range headers {
					dst[k] = v
				}
			}
			return next(ctx)
		}
	}
}

func (cfg SecurityHeadersConfig) header() http.Header {
	h := http.Header{}
	add := func(key, value string) {
		if value != "" {
			h.Set(key, value)
		}
	}
	add("X-Content-Type-Options", cfg.ContentTypeOptions)
	add("X-Frame-Options", cfg.FrameOptions)
	if !cfg.IsDevelopment {
		add("Strict-Transport-Security", cfg.StrictTransportSecurity)
	}
	add("Content-Security-Policy", cfg.ContentSecurityPolicy)
	add("Referrer-Policy", cfg.ReferrerPolicy)
	add("Permissions-Policy", cfg.PermissionsPolicy)
	add("Cross-Origin-Opener-Policy", cfg.CrossOriginOpenerPolicy)
	add("Cross-Origin-Resource-Policy", cfg.CrossOriginResourcePolicy)
	for k, v := range cfg.CustomHeaders {
		add(k, v)
	}
	return h
}
