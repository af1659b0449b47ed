// Package httpserver runs an http.Handler with timeouts, graceful shutdown
// on SIGINT or SIGTERM and lifecycle logging, and provides liveness and
// readiness probe handlers.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//
//	r.Get("/healthz", httpserver.LivenessHandler())
//	r.Get("/readyz", httpserver.ReadinessHandler(log,
//		httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)},
//	))
//
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run joins listen failures with ErrStart and Shutdown joins shutdown
// failures with ErrShutdown.
package httpserver
