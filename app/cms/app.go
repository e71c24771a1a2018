package cms

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/doccms/core/cookie"
	"github.com/dmitrymomot/doccms/core/credentials"
	"github.com/dmitrymomot/doccms/core/health"
	"github.com/dmitrymomot/doccms/core/logger"
	"github.com/dmitrymomot/doccms/core/render"
	"github.com/dmitrymomot/doccms/core/router"
	"github.com/dmitrymomot/doccms/core/server"
	"github.com/dmitrymomot/doccms/core/session"
	"github.com/dmitrymomot/doccms/core/sessiontransport"
	"github.com/dmitrymomot/doccms/core/storage"
	"github.com/dmitrymomot/doccms/integration/database/redis"
	"github.com/dmitrymomot/doccms/integration/storage/s3"
	"github.com/dmitrymomot/doccms/middleware"
	"github.com/dmitrymomot/doccms/pkg/ratelimiter"
)

var (
	ErrUnknownStorageDriver = errors.New("unknown storage driver")
	ErrUnknownSessionStore  = errors.New("unknown session store")
)

type App struct {
	config    Config
	router    router.Router[*Context]
	server    *server.Server
	cookie    *cookie.Manager
	session   *session.Manager[SessionData]
	transport *sessiontransport.Cookie[SessionData]
	store     storage.Storage
	users     *credentials.Store
	renderer  *render.Renderer
	policy    *storage.NamePolicy
	pages     map[string]*template.Template
	limiter   ratelimiter.RateLimiter
	limits    *ratelimiter.MemoryStore
	checks    []health.Check
	closers   []func() error
	logger    *slog.Logger
}

type AppOption func(*App) error

// NewApp wires the application from cfg. Dependencies not injected with an
// option are built from the configuration: the storage driver, the session
// store, the users file and the cookie manager.
func NewApp(ctx context.Context, cfg Config, opts ...AppOption) (*App, error) {
	app := &App{config: cfg}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.logger == nil {
		app.logger = newLogger(cfg)
	}

	if app.renderer == nil {
		app.renderer = render.New(render.WithUnsafeHTML(cfg.MarkdownUnsafeHTML))
	}

	policy, err := storage.NewNamePolicy(cfg.DocumentPatterns...)
	if err != nil {
		return nil, err
	}
	app.policy = policy

	pages, err := parsePages()
	if err != nil {
		return nil, err
	}
	app.pages = pages

	if cfg.SignInRateLimit > 0 {
		app.limits = ratelimiter.NewMemoryStore()
		limiter, err := ratelimiter.NewBucket(app.limits, ratelimiter.Config{
			Capacity:       cfg.SignInRateLimit,
			RefillRate:     cfg.SignInRateLimit,
			RefillInterval: cfg.SignInRateWindow,
		})
		if err != nil {
			return nil, err
		}
		app.limiter = limiter
	}

	if app.users == nil {
		users, err := credentials.LoadFile(cfg.UsersPath())
		if err != nil {
			return nil, err
		}
		app.users = users
	}

	if app.store == nil {
		if err := app.openStorage(ctx); err != nil {
			app.Close()
			return nil, err
		}
	}
	app.checks = append(app.checks, health.Check{Name: "storage", Fn: app.store.Ping})

	if app.cookie == nil {
		cm, err := cookie.NewFromConfig(cfg.Cookie)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.cookie = cm
	}

	if app.session == nil {
		store, err := app.openSessionStore(ctx)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.session = session.NewManager(store, session.WithConfig(cfg.Session))
	}
	app.transport = sessiontransport.NewCookieFromConfig(cfg.SessionCookie, app.session, app.cookie)

	if app.server == nil {
		s, err := server.NewFromConfig(cfg.Server, server.WithLogger(app.logger))
		if err != nil {
			app.Close()
			return nil, err
		}
		app.server = s
	}

	app.router = router.New(
		router.WithContextFactory[*Context](newContext),
		router.WithErrorHandler[*Context](app.handleError),
		router.WithLogger[*Context](app.logger),
	)
	app.routes()

	return app, nil
}

func WithLogger(logger *slog.Logger) AppOption {
	return func(app *App) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = logger
		return nil
	}
}

func WithServer(server *server.Server) AppOption {
	return func(app *App) error {
		if server == nil {
			return errors.New("server cannot be nil")
		}
		app.server = server
		return nil
	}
}

func WithCookieManager(cookie *cookie.Manager) AppOption {
	return func(app *App) error {
		if cookie == nil {
			return errors.New("cookie manager cannot be nil")
		}
		app.cookie = cookie
		return nil
	}
}

func WithSessionManager(session *session.Manager[SessionData]) AppOption {
	return func(app *App) error {
		if session == nil {
			return errors.New("session manager cannot be nil")
		}
		app.session = session
		return nil
	}
}

// WithStorage replaces the configured document store.
func WithStorage(store storage.Storage) AppOption {
	return func(app *App) error {
		if store == nil {
			return errors.New("storage cannot be nil")
		}
		app.store = store
		return nil
	}
}

// WithCredentials replaces the users file.
func WithCredentials(users *credentials.Store) AppOption {
	return func(app *App) error {
		if users == nil {
			return errors.New("credentials cannot be nil")
		}
		app.users = users
		return nil
	}
}

func WithRenderer(renderer *render.Renderer) AppOption {
	return func(app *App) error {
		if renderer == nil {
			return errors.New("renderer cannot be nil")
		}
		app.renderer = renderer
		return nil
	}
}

// Handler returns the HTTP handler serving every route.
func (a *App) Handler() http.Handler {
	return a.router
}

// Run serves HTTP, purges expired sessions and sweeps idle sign-in rate
// limit buckets until ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	a.logger.InfoContext(ctx, "starting",
		logger.Component("cms"),
		logger.Key("env", a.config.Env),
		logger.Key("storage", a.config.StorageDriver),
		logger.Key("session_store", a.config.SessionStore),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(a.server.Run(ctx, a.Handler()))
	g.Go(a.cleanupSessions(ctx))
	if a.limits != nil {
		g.Go(a.limits.Run(ctx))
	}
	return g.Wait()
}

// Close releases connections opened by NewApp.
func (a *App) Close() error {
	var errs []error
	for _, closeFn := range a.closers {
		errs = append(errs, closeFn())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) cleanupSessions(ctx context.Context) func() error {
	return func() error {
		interval := a.config.SessionCleanupInterval
		if interval <= 0 {
			return nil
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				n, err := a.session.CleanupExpired(ctx)
				if err != nil {
					a.logger.ErrorContext(ctx, "session cleanup failed",
						logger.Component("session"),
						logger.Error(err),
					)
					continue
				}
				if n > 0 {
					a.logger.DebugContext(ctx, "expired sessions removed",
						logger.Component("session"),
						logger.Count("removed", int(n)),
					)
				}
			}
		}
	}
}

func (a *App) openStorage(ctx context.Context) error {
	switch a.config.StorageDriver {
	case "", StorageLocal:
		store, err := storage.NewLocal(a.config.DocumentRoot())
		if err != nil {
			return err
		}
		a.store = store
	case StorageS3:
		store, err := s3.New(ctx, a.config.S3)
		if err != nil {
			return err
		}
		a.store = store
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorageDriver, a.config.StorageDriver)
	}
	return nil
}

func (a *App) openSessionStore(ctx context.Context) (session.Store[SessionData], error) {
	switch a.config.SessionStore {
	case "", SessionStoreMemory:
		return session.NewMemoryStore[SessionData](), nil
	case SessionStoreRedis:
		client, err := redis.Connect(ctx, a.config.Redis)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Close)
		a.checks = append(a.checks, health.Check{Name: "redis", Fn: redis.Healthcheck(client)})
		return redis.NewSessionStore[SessionData](client, a.config.Redis.SessionKeyPrefix), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSessionStore, a.config.SessionStore)
	}
}

func newLogger(cfg Config) *slog.Logger {
	opts := []logger.Option{logger.WithDevelopment(cfg.AppName)}
	if cfg.IsProduction() {
		opts = []logger.Option{logger.WithProduction(cfg.AppName)}
	}
	opts = append(opts,
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithContextValue("request_id", middleware.RequestIDContextKey),
	)
	return logger.New(opts...)
}
