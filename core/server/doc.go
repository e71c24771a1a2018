// Package server wraps http.Server with graceful shutdown, TLS from files and
// env-driven configuration.
//
//	cfg := config.MustLoad[server.Config]()
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, handler))
//	return g.Wait()
//
// Run returns a func suitable for errgroup: it serves until ctx is canceled,
// then shuts down within the configured timeout. Start and Stop give direct
// control when needed. Addr reports the bound address, which makes ":0"
// usable in tests.
package server
