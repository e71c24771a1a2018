package cms

import (
	"strings"

	"github.com/dmitrymomot/doccms/core/handler"
	"github.com/dmitrymomot/doccms/core/health"
	"github.com/dmitrymomot/doccms/core/logger"
	"github.com/dmitrymomot/doccms/core/response"
	"github.com/dmitrymomot/doccms/core/router"
	"github.com/dmitrymomot/doccms/core/static"
	"github.com/dmitrymomot/doccms/middleware"
	"github.com/dmitrymomot/doccms/pkg/clientip"
	"github.com/dmitrymomot/doccms/pkg/ratelimiter"
)

const (
	healthPrefix = "/_health/"
	assetPrefix  = "/assets/"
)

func (a *App) routes() {
	r := a.router

	security := middleware.BalancedSecurity
	if !a.config.IsProduction() {
		security.IsDevelopment = true
	}

	r.Use(
		middleware.RequestID[*Context](),
		middleware.LoggingWithConfig[*Context](middleware.LoggingConfig{
			Logger:    a.logger,
			Component: "http",
			Skip:      isHealthProbe,
		}),
		middleware.SecurityHeadersWithConfig[*Context](security),
		middleware.BodyLimitWithSize[*Context](a.config.MaxBodySize),
		middleware.SessionWithConfig(middleware.SessionConfig[*Context, SessionData]{
			Transport: a.transport,
			Logger:    a.logger,
			Skip:      func(ctx *Context) bool { return isHealthProbe(ctx) || isAsset(ctx) },
		}),
	)

	r.Get("/_health/live", health.Liveness[*Context])
	r.Get("/_health/ready", health.Readiness[*Context](a.logger, a.checks...))

	r.Get("/assets/style.css", static.FS[*Context](assetFS,
		static.WithSubFS("assets"),
		static.WithFSStripPrefix("/assets"),
		static.WithCacheControl("public, max-age=3600"),
	))

	r.Get("/{$}", a.index)
	r.Get("/users/signin", a.signInForm)
	a.throttled(r).Post("/users/signin", a.signIn)
	r.Post("/sign_out", a.signOut)
	r.Get("/{filename}", a.showDocument)

	guarded := r.With(requireSignIn)
	guarded.Get("/new", a.newDocumentForm)
	guarded.Post("/new", a.createDocument)
	guarded.Get("/{filename}/edit", a.editDocumentForm)
	guarded.Post("/{filename}/edit", a.updateDocument)
	guarded.Post("/{filename}/delete", a.deleteDocument)
	guarded.Post("/{filename}/duplicate", a.duplicateDocument)
}

// throttled applies the sign-in rate limit when one is configured.
func (a *App) throttled(r router.Router[*Context]) router.Router[*Context] {
	if a.limiter == nil {
		return r
	}
	return r.With(middleware.RateLimit[*Context](middleware.RateLimitConfig{
		Limiter: a.limiter,
		ErrorHandler: func(ctx handler.Context, _ *ratelimiter.Result) handler.Response {
			a.logger.WarnContext(ctx, "sign-in rate limit exceeded",
				logger.Component("auth"),
				logger.Event("auth.throttled"),
				logger.ClientIP(clientip.GetIP(ctx.Request())),
			)
			return response.Error(response.ErrTooManyRequests)
		},
	}))
}

// requireSignIn redirects anonymous visitors to the listing before any
// guarded handler runs.
var requireSignIn = middleware.RequireAuth[*Context, SessionData](func(ctx *Context) handler.Response {
	ctx.SetFlash("You must be signed in to do that.")
	return response.Redirect("/")
})

func isHealthProbe(ctx handler.Context) bool {
	return strings.HasPrefix(ctx.Request().URL.Path, healthPrefix)
}

func isAsset(ctx handler.Context) bool {
	return strings.HasPrefix(ctx.Request().URL.Path, assetPrefix)
}
