package health

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/doccms/core/handler"
	"github.com/dmitrymomot/doccms/core/logger"
	"github.com/dmitrymomot/doccms/core/response"
)

// DefaultCheckTimeout bounds the total time of a readiness probe.
const DefaultCheckTimeout = 5 * time.Second

// Check verifies one dependency.
type Check struct {
	Name string
	Fn   func(context.Context) error
}

// Readiness verifies all service dependencies are functioning.
// Checks run concurrently; the probe returns "READY" if all pass and
// 503 Service Unavailable as soon as one fails.
//
//	r.Get("/_health/ready", health.Readiness[*myapp.Context](log,
//		health.Check{Name: "storage", Fn: store.Ping},
//		health.Check{Name: "redis", Fn: redis.Healthcheck(client)},
//	))
func Readiness[C handler.Context](log *slog.Logger, checks ...Check) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		checkCtx, cancel := context.WithTimeout(ctx, DefaultCheckTimeout)
		defer cancel()

		g, gctx := errgroup.WithContext(checkCtx)
		for _, c := range checks {
			g.Go(func() error {
				if err := c.Fn(gctx); err != nil {
					log.ErrorContext(ctx, "readiness check failed",
						logger.Component("health"),
						logger.Key("check", c.Name),
						logger.Error(err),
					)
					return err
				}
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return response.Error(response.ErrServiceUnavailable)
		}
		return response.NoStore(response.String("READY"))
	}
}
